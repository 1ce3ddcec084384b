package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	YouTube  YouTubeConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// GeminiConfig holds the generative-language provider configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// YouTubeConfig holds the caption source configuration
type YouTubeConfig struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// AnalysisConfig holds pipeline behavior knobs
type AnalysisConfig struct {
	// MockTranscriptEnabled controls whether an unavailable transcript is
	// replaced by the canned transcript instead of failing the request.
	MockTranscriptEnabled bool
	JobTimeout            time.Duration
	JobRetention          time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "30s"),
		},
		YouTube: YouTubeConfig{
			BaseURL:  getEnv("YOUTUBE_BASE_URL", "https://www.youtube.com"),
			Language: getEnv("CAPTION_LANGUAGE", "en"),
			Timeout:  getEnvAsDuration("YOUTUBE_TIMEOUT", "15s"),
		},
		Analysis: AnalysisConfig{
			MockTranscriptEnabled: getEnvAsBool("MOCK_TRANSCRIPT_ENABLED", true),
			JobTimeout:            getEnvAsDuration("ANALYSIS_JOB_TIMEOUT", "5m"),
			JobRetention:          getEnvAsDuration("ANALYSIS_JOB_RETENTION", "1h"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. Model credentials are checked once
// here so generators never re-validate per call.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
