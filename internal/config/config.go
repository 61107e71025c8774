package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	BaseURL       string
	DatabaseDSN   string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	// Load .env kalau ada (di server production biasanya pakai env asli)
	godotenv.Load()

	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:root@tcp(localhost:3306)/jasarumah?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
