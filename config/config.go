package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string // postgres://..., sqlite://path or file:path
	DatabaseName string // optional override of the database in DatabaseURL
	RedisURL     string // empty disables inquiry notifications
	RedisQueue   string
	LogLevel     string
	GinMode      string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:         get("PORT", "8000"),
		DatabaseURL:  get("DATABASE_URL", ""),
		DatabaseName: get("DATABASE_NAME", ""),
		RedisURL:     get("REDIS_URL", ""),
		RedisQueue:   get("REDIS_QUEUE", "inquiry_events"),
		LogLevel:     get("LOG_LEVEL", "INFO"),
		GinMode:      get("GIN_MODE", "release"),
	}
	return cfg
}

// Validate rejects settings the server cannot start with. A missing
// DATABASE_URL is not an error: the store reports it at request time.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %d: out of range", port)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) DatabaseURLSet() bool  { return c.DatabaseURL != "" }
func (c Config) DatabaseNameSet() bool { return c.DatabaseName != "" }

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
