package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Cache   CacheConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
}

type BackendConfig struct {
	ServerURL string
	AuthToken string
	Timeout   time.Duration
}

type CacheConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "marginalia.log"),
		},
		Backend: BackendConfig{
			ServerURL: getEnv("SERVER_URL", "http://localhost:8000"),
			AuthToken: getEnv("AUTH_TOKEN", ""),
			Timeout:   getEnvAsDuration("HTTP_TIMEOUT_SECONDS", 30*time.Second),
		},
		Cache: CacheConfig{
			TTL:             getEnvAsDuration("CACHE_TTL_SECONDS", 5*time.Minute),
			CleanupInterval: getEnvAsDuration("CACHE_CLEANUP_SECONDS", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if seconds, err := strconv.Atoi(strValue); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
