package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the wellness service
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	HTTPPort    string
	GRPCPort    string
	MetricsPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_DATABASE", "wellnest"),
		},
		Server: ServerConfig{
			HTTPPort:    getEnv("HTTP_PORT", "8080"),
			GRPCPort:    getEnv("GRPC_PORT", "50051"),
			MetricsPort: getEnv("METRICS_PORT", "9090"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
