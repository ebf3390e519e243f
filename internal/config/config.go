package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Jobs     JobConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// UploadConfig holds statement upload and file store configuration.
type UploadConfig struct {
	Dir           string // directory for stored statement binaries
	EncryptionKey string // base64 fernet key; generated at startup when empty
	MaxBytes      int64  // upload size cap
}

// JobConfig holds background parse job configuration.
type JobConfig struct {
	Workers          int    // concurrent statement parse workers
	StuckAfterMin    int    // minutes before a processing statement is re-queued
	PriceRefreshSpec string // cron spec for the holdings price refresh
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/statements.db"),
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", "./data/uploads"),
			EncryptionKey: getEnv("UPLOAD_ENCRYPTION_KEY", ""),
			MaxBytes:      getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
		},
		Jobs: JobConfig{
			Workers:          getEnvInt("PARSE_WORKERS", 4),
			StuckAfterMin:    getEnvInt("STUCK_AFTER_MINUTES", 15),
			PriceRefreshSpec: getEnv("PRICE_REFRESH_CRON", "0 18 * * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvInt64 gets a 64-bit integer environment variable or returns a default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
