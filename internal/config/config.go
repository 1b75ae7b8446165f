package config

import (
	"os"
	"strconv"
)

const (
	defaultPort          = "8080"
	defaultEnvironment   = "development"
	defaultMaxFileSize   = 50 * 1024 * 1024 // 50MB
	defaultFormatVersion = 2
)

// Config holds the application configuration
type Config struct {
	Port          string
	Environment   string
	MaxFileSize   int64 // in bytes
	FormatVersion byte  // huffman container version written by compress
	Progress      bool  // show a progress bar for file operations
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		Environment:   getEnv("GO_ENV", defaultEnvironment),
		MaxFileSize:   getEnvInt64("MAX_FILE_SIZE", defaultMaxFileSize),
		FormatVersion: getEnvVersion("HUFFPACK_FORMAT_VERSION", defaultFormatVersion),
		Progress:      getEnvBool("HUFFPACK_PROGRESS", false),
	}

	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}
	return cfg
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt64 parses an integer environment variable, falling back to the
// default when it is unset or invalid
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

// getEnvVersion reads a container format version, falling back to the default
// for anything other than 1 or 2
func getEnvVersion(key string, defaultValue byte) byte {
	switch v := getEnvInt64(key, int64(defaultValue)); v {
	case 1, 2:
		return byte(v)
	default:
		return defaultValue
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
