// Package config loads environment variables into typed structs.
//
// Fields are described with caarlos0/env tags. A .env file in the working
// directory is read once before the first load; variables already present in
// the environment win.
//
//	type appConfig struct {
//		Auth     auth.Config
//		RedisURL string `env:"REDIS_URL"`
//	}
//
//	var cfg appConfig
//	config.MustLoad(&cfg) // panics when SESSION_SECRET is unset
//
// Each struct type is parsed once per process. Later calls with the same type
// receive a copy of the cached value, so changing the environment afterwards
// has no effect for that type.
package config
