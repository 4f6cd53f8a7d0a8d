// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// behind a small generic API: describe the configuration as a struct with
// `env` tags and ask for a populated value.
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig]()
//	if err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// A .env file in the working directory is picked up automatically on
// first use; additional files can be loaded explicitly with LoadFiles,
// where a missing file is an error. MustLoad panics on failure and is
// meant for configuration the process cannot run without:
//
//	sessionCfg := config.MustLoad[session.Config]()
//
// Errors can be compared with errors.Is against ErrParsingConfig and
// ErrMissingEnvFile.
package config
