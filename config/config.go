package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Validate when no API credential is configured.
var ErrMissingAPIKey = errors.New("FINANCIAL_API_KEY environment variable not set")

// Config holds all application configuration loaded from environment variables.
type Config struct {
	APIKey         string
	APIBaseURL     string
	IndexSymbol    string
	IndexName      string
	RequestTimeout time.Duration

	TemplatePath string
	OutputPath   string

	LogLevel  string
	LogFormat string

	// DotEnvErr is set when no usable .env file was found; system env vars
	// are used instead.
	DotEnvErr error
}

// Load reads the .env file (if any) and returns a populated Config struct.
func Load() *Config {
	var dotEnvErr error
	if err := godotenv.Load(); err != nil {
		dotEnvErr = fmt.Errorf("load .env: %w", err)
	}

	return &Config{
		DotEnvErr: dotEnvErr,

		APIKey:         strings.TrimSpace(os.Getenv("FINANCIAL_API_KEY")),
		APIBaseURL:     strings.TrimRight(getEnv("FINANCIAL_API_BASE_URL", "https://finnhub.io/api/v1"), "/"),
		IndexSymbol:    getEnv("INDEX_SYMBOL", "SPY"),
		IndexName:      getEnv("INDEX_NAME", "S&P 500"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,

		TemplatePath: getEnv("HTML_TEMPLATE_FILE", "template.html"),
		OutputPath:   getEnv("OUTPUT_HTML_FILE", "index.html"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports configuration problems that must stop the program before
// any request is made.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
