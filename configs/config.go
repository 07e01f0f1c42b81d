package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

// ConfigOr returns the configured value for key, or fallback when unset.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
