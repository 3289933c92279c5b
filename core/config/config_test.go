package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/core/config"
)

type serverConfig struct {
	Addr         string        `env:"CONFIG_TEST_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"CONFIG_TEST_READ_TIMEOUT" envDefault:"5s"`
	SecureCookie bool          `env:"CONFIG_TEST_SECURE"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_ADDR", ":9000")
	t.Setenv("CONFIG_TEST_SECURE", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.SecureCookie)

	t.Setenv("CONFIG_TEST_ADDR", ":1")

	var cached serverConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, cfg, cached)
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_SECRET")

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoad_Nil(t *testing.T) {
	t.Parallel()

	var cfg *serverConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}
