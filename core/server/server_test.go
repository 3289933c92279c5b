package server_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/core/server"
)

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	assert.Nil(t, srv.Addr())
	require.NoError(t, srv.Listen())
	addr := srv.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))()
	}()

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Nil(t, srv.Addr())
}

func TestServer_ListenTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	require.NoError(t, srv.Listen())
	assert.ErrorIs(t, srv.Listen(), server.ErrServerAlreadyRunning)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Serve(ctx, http.NotFoundHandler()))
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:-1")
	assert.Error(t, srv.Serve(context.Background(), http.NotFoundHandler()))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv, err := server.NewFromConfig(server.DefaultConfig(), server.WithShutdownTimeout(time.Second))
	require.NoError(t, err)
	assert.NotNil(t, srv)

	_, err = server.NewFromConfig(server.Config{ReadTimeout: time.Second})
	assert.ErrorIs(t, err, server.ErrMissingAddress)

	_, err = server.NewFromConfig(server.Config{
		Addr:        ":0",
		TLSCertFile: "missing.crt",
		TLSKeyFile:  "missing.key",
	})
	assert.ErrorIs(t, err, server.ErrFailedLoadCert)
}
