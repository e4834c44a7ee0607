package config

import (
	"os"
	"strconv"
)

// Config holds the configuration for the question answering pipeline
type Config struct {
	Retrieval RetrievalConfig
	Log       LogConfig
	API       APIConfig
}

// RetrievalConfig holds how many results each ranking stage keeps
type RetrievalConfig struct {
	FileMatches     int
	SentenceMatches int
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	JSON  bool
}

// APIConfig holds the HTTP query API settings. An empty Addr disables the API.
type APIConfig struct {
	Addr string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Retrieval: RetrievalConfig{
			FileMatches:     GetIntEnv("RETRIEVAL_FILE_MATCHES", 1),
			SentenceMatches: GetIntEnv("RETRIEVAL_SENTENCE_MATCHES", 1),
		},
		Log: LogConfig{
			Level: GetStringEnv("LOG_LEVEL", "warn"),
			JSON:  GetBoolEnv("LOG_JSON", false),
		},
		API: APIConfig{
			Addr: GetStringEnv("API_ADDR", ""),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
