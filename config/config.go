package config

import (
	"os"
	"strings"
)

type Config struct {
	// Database settings
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSslMode string
	DbTz      string

	// Server settings
	Env      string
	Port     string
	AppUrl   string
	AppName  string
	LogLevel string

	// External services
	InferenceUrl string

	// Security settings
	CorsOrigins []string
}

func LoadConfig() *Config {
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	return &Config{
		// Database settings
		DbHost:    getEnv("DB_HOST", "localhost"),
		DbPort:    getEnv("DB_PORT", "5432"),
		DbUser:    getEnv("DB_USER", "postgres"),
		DbPass:    getEnv("DB_PASSWORD", "password"),
		DbName:    getEnv("DB_NAME", "assist_db"),
		DbSslMode: getEnv("DB_SSLMODE", "disable"),
		DbTz:      getEnv("DB_TZ", "UTC"),

		// Server settings
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8040"),
		AppUrl:   getEnv("APP_URL", "http://localhost:8040"),
		AppName:  getEnv("APP_NAME", "Retail Assist"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// External services
		InferenceUrl: getEnv("INFERENCE_URL", "http://localhost:8000"),

		// Security settings
		CorsOrigins: strings.Split(corsOrigins, ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
