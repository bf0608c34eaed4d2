// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: the
// default .env file (if any) is loaded once per process, then the
// environment is parsed into the struct based on `env` field tags.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrNilPointer    – nil pointer passed to Load/MustLoad.
package config
