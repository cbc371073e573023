// Package config loads typed configuration from environment variables.
//
// Each configuration type is parsed once and cached for the rest of the
// process. A .env file in the working directory is loaded on first use.
// Parsing is done by caarlos0/env, so struct fields use its tags:
//
//	type Config struct {
//		Nulled bool   `env:"DEMO_NULLED" envDefault:"true"`
//		PGURL  string `env:"PG_CONN_URL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	// or, during startup
//	config.MustLoad(&cfg)
package config
