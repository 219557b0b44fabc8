package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting, loaded from environment variables.
type Config struct {
	Port        string `env:"PORT" envDefault:"3333"`
	JWTSecret   string `env:"JWT_SECRET,notEmpty"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// RedisAddr is optional; when empty the user cache is disabled.
	RedisAddr string `env:"REDIS_ADDR"`

	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
