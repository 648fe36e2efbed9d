package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogFile     string
	CorsOrigins string

	// "local" streams the CSV back directly, "s3" uploads it and
	// answers with a presigned download URL.
	ExportTarget    string
	StorageBucket   string
	StorageRegion   string
	StorageEndpoint string
	ExportURLTTL    time.Duration
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:            getEnv("PORT", "3333"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		LogFile:         getEnv("LOG_FILE", ""),
		CorsOrigins:     getEnv("CORS_ORIGINS", "*"),
		ExportTarget:    getEnv("EXPORT_TARGET", "local"),
		StorageBucket:   getEnv("AWS_BUCKET_NAME", ""),
		StorageRegion:   getEnv("AWS_REGION", "auto"),
		StorageEndpoint: getEnv("AWS_ENDPOINT_URL", ""),
		ExportURLTTL:    time.Duration(getEnvInt("EXPORT_URL_TTL", 600)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
