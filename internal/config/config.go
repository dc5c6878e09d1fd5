package config

import "os"

// Config contains runtime settings for the API server.
type Config struct {
	Port     string // default 8080
	LogLevel string // default info
	DB       struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
}

// Load populates config from environment variables.
func Load() Config {
	cfg := Config{
		Port:     "8080",
		LogLevel: "info",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.DB.Host = envOr("DB_HOST", "localhost")
	cfg.DB.Port = envOr("DB_PORT", "5432")
	cfg.DB.User = envOr("DB_USER", "postgres")
	cfg.DB.Password = envOr("DB_PASSWORD", "postgres")
	cfg.DB.Name = envOr("DB_NAME", "joboffers")
	cfg.DB.SSLMode = envOr("DB_SSLMODE", "disable")

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
