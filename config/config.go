// Package config provides configuration management for the V-Nexus application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting.
// This allows the service to be configured for different environments (dev, staging,
// prod) without code changes.
package config

import (
	"fmt"
	// `os` package provides operating system functionalities, like reading environment variables.
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageConfig holds configuration for the persistent key-value store.
// The store is a single embedded database file; `Path` is where it lives on disk.
type StorageConfig struct {
	Path string // Filesystem path of the store file
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret            string        // Secret key for signing JWTs
	AccessTokenDuration  time.Duration // Duration for access tokens
	RefreshTokenDuration time.Duration // Duration for refresh tokens
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// MessagingConfig holds configuration for the simulated-reply machinery.
type MessagingConfig struct {
	ReplyDelay   time.Duration // How long after a sent message the synthetic reply lands
	ReplyWorkers int           // Number of concurrent reply workers
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Storage   *StorageConfig
	Auth      *AuthConfig
	Server    *ServerConfig
	Messaging *MessagingConfig
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set.
// This promotes a "fail fast" approach for critical missing configurations.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return "" // Return empty string, error is collected
	}
	return value
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as time.Duration.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist,
// so a misconfigured deployment reports every problem at once instead of one per restart.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Storage Configuration
	storagePath := getOptionalEnv("STORAGE_PATH", "vnexus.db")
	storageConfig := &StorageConfig{
		Path: storagePath,
	}

	// Auth Configuration
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	accessTokenDuration := getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute, &errors)
	refreshTokenDuration := getOptionalEnvDuration("JWT_REFRESH_TOKEN_DURATION", 168*time.Hour, &errors) // 7 days

	authConfig := &AuthConfig{
		JWTSecret:            jwtSecret,
		AccessTokenDuration:  accessTokenDuration,
		RefreshTokenDuration: refreshTokenDuration,
	}

	// Messaging Configuration
	// The reply delay is the cosmetic latency between a sent message and its
	// simulated answer; the worker count bounds how many replies are in flight.
	replyDelay := getOptionalEnvDuration("REPLY_DELAY", 2*time.Second, &errors)
	replyWorkers := getOptionalEnvInt("REPLY_WORKERS", 2, &errors)
	if replyWorkers < 1 {
		errors = append(errors, fmt.Sprintf("REPLY_WORKERS must be at least 1, got %d", replyWorkers))
		replyWorkers = 1
	}
	messagingConfig := &MessagingConfig{
		ReplyDelay:   replyDelay,
		ReplyWorkers: replyWorkers,
	}

	// Server Configuration
	serverPort := getOptionalEnv("PORT", "8080")
	serverConfig := &ServerConfig{
		// Note: Server port is kept as a string because it's used directly in the listen address (e.g., ":8080").
		Port: serverPort,
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	// Return the fully populated AppConfig.
	return &AppConfig{
		Storage:   storageConfig,
		Auth:      authConfig,
		Server:    serverConfig,
		Messaging: messagingConfig,
	}, nil
}
