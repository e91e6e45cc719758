// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is loaded automatically on first use and
// parsing is handled by the caarlos0/env library.
//
//	type ServerConfig struct {
//		Addr  string `env:"SERVER_ADDR" envDefault:":8080"`
//		Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type loads once per application lifetime; subsequent
// Load calls for the same type return the cached value.
package config
