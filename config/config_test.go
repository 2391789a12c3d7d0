package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FINANCIAL_API_KEY", "FINANCIAL_API_BASE_URL", "INDEX_SYMBOL", "INDEX_NAME",
		"REQUEST_TIMEOUT_SECONDS", "HTML_TEMPLATE_FILE", "OUTPUT_HTML_FILE",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()

	if cfg.APIBaseURL != "https://finnhub.io/api/v1" {
		t.Errorf("APIBaseURL: got %q", cfg.APIBaseURL)
	}
	if cfg.IndexSymbol != "SPY" {
		t.Errorf("IndexSymbol: got %q, want SPY", cfg.IndexSymbol)
	}
	if cfg.IndexName != "S&P 500" {
		t.Errorf("IndexName: got %q, want S&P 500", cfg.IndexName)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout: got %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.TemplatePath != "template.html" || cfg.OutputPath != "index.html" {
		t.Errorf("paths: got %q -> %q", cfg.TemplatePath, cfg.OutputPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("FINANCIAL_API_KEY", "  secret  ")
	t.Setenv("FINANCIAL_API_BASE_URL", "http://localhost:9999/api/")
	t.Setenv("INDEX_SYMBOL", "QQQ")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")

	cfg := Load()

	if cfg.APIKey != "secret" {
		t.Errorf("APIKey: got %q, want trimmed %q", cfg.APIKey, "secret")
	}
	if cfg.APIBaseURL != "http://localhost:9999/api" {
		t.Errorf("APIBaseURL: got %q, want trailing slash trimmed", cfg.APIBaseURL)
	}
	if cfg.IndexSymbol != "QQQ" {
		t.Errorf("IndexSymbol: got %q, want QQQ", cfg.IndexSymbol)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout: got %v, want 3s", cfg.RequestTimeout)
	}
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"abc", 10},
		{"0", 10},
		{"-4", 10},
		{"25", 25},
	}

	for _, tt := range tests {
		t.Setenv("REQUEST_TIMEOUT_SECONDS", tt.raw)
		if got := getEnvInt("REQUEST_TIMEOUT_SECONDS", 10); got != tt.want {
			t.Errorf("getEnvInt(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Validate() = %v; want ErrMissingAPIKey", err)
	}

	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with key = %v; want nil", err)
	}
}

func TestLoadReportsMissingDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	if cfg := Load(); cfg.DotEnvErr == nil {
		t.Error("DotEnvErr should be set when there is no .env file")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FINANCIAL_API_KEY")
	os.Unsetenv("INDEX_SYMBOL")
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(".env", []byte("FINANCIAL_API_KEY=from-file\nINDEX_SYMBOL=DIA\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.DotEnvErr != nil {
		t.Errorf("DotEnvErr: got %v, want nil", cfg.DotEnvErr)
	}
	if cfg.APIKey != "from-file" || cfg.IndexSymbol != "DIA" {
		t.Errorf("values from .env: got key %q symbol %q", cfg.APIKey, cfg.IndexSymbol)
	}
}
