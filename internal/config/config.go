package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	ProjectID     string
	StorageBucket string
	JWTSecret     string
	TokenTTL      time.Duration
	Port          string
	AdminEmail    string
	AdminPassword string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		ProjectID:     getEnvOrDefault("PROJECT_ID", ""),
		StorageBucket: getEnvOrDefault("STORAGE_BUCKET", ""),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:      getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		Port:          getEnvOrDefault("PORT", "8080"),
		AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
