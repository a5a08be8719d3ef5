// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// placeholderAPIKey is the template value shipped in example env files. A
// key left at this value means the remote backend was never configured.
const placeholderAPIKey = "YOUR_API_KEY"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	JWT      JWTConfig
	Local    LocalConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// FirebaseConfig holds the remote identity and document store configuration.
type FirebaseConfig struct {
	APIKey          string
	ProjectID       string
	CredentialsFile string
}

// JWTConfig holds JWT token configuration.
type JWTConfig struct {
	Secret string
}

// LocalConfig holds the embedded database configuration used when no remote
// backend is configured.
type LocalConfig struct {
	DatabasePath string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Firebase: FirebaseConfig{
			APIKey:          getEnv("FIREBASE_API_KEY", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		Local: LocalConfig{
			DatabasePath: getEnv("LOCAL_DB_PATH", "lifeplan.db"),
		},
	}
}

// RemoteEnabled reports whether the Firebase backend is configured. The
// decision is made once at startup; there is no runtime fallback between
// backends.
func (c *Config) RemoteEnabled() bool {
	return c.Firebase.APIKey != "" &&
		c.Firebase.APIKey != placeholderAPIKey &&
		c.Firebase.ProjectID != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
