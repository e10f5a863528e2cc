package configs

import (
	"os"
	"strconv"
)

// AppConfig holds the process-level settings read from the environment.
type AppConfig struct {
	Port           string
	Environment    string
	AllowedOrigins string
	AutoMigrate    bool
}

// LoadAppConfig reads the application configuration from environment
// variables. godotenv.Load in main makes .env values visible here.
func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:           GetEnv("PORT", "3000"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
		AllowedOrigins: GetEnv("ALLOWED_ORIGINS", "*"),
		AutoMigrate:    GetEnvBool("AUTO_MIGRATE", true),
	}
}

// GetEnv returns the value of key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvBool returns the boolean value of key, or fallback when unset or unparseable.
func GetEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
