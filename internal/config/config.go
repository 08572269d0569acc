package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. DBDSN and AMQPURL are optional: without
// a DSN the service runs on the in-memory repository, without a broker URL
// acceptance events are logged instead of published.
type Config struct {
	ServerPort string
	DBDSN      string
	AMQPURL    string
	LogLevel   string
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: os.Getenv("SERVER_PORT"),
		DBDSN:      os.Getenv("DB_DSN"),
		AMQPURL:    os.Getenv("AMQP_URL"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	return cfg
}
