package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	UploadDir      string
	MaxUploadBytes int64
	SessionTTL     time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loaded from .env and the
// process environment on first use.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using process environment")
		}

		config = &Config{
			ListenAddr:     getEnv("LISTEN_ADDR", ":8005"),
			UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 100<<20),
			SessionTTL:     getEnvDuration("SESSION_TTL", time.Hour),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default", key, v)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using default", key, v)
	}
	return fallback
}
