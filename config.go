package stylegen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	// APIKey authenticates every remote call. Required.
	APIKey string `env:"API_KEY"`

	// ImageModel is used by Generate.
	ImageModel Model `env:"IMAGE_MODEL" envDefault:"gemini-2.5-flash-image-preview"`

	// AnalysisModel is used by AnalyzeStyle.
	AnalysisModel Model `env:"ANALYSIS_MODEL" envDefault:"gemini-2.5-flash"`

	// BaseURL overrides the API endpoint (optional)
	BaseURL string `env:"GEMINI_BASE_URL"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// LoadConfig reads configuration from the process environment. Any envFiles
// are read first as dotenv files; variables already set in the process
// environment win over them.
//
// A missing API key returns ErrMissingAPIKey. Callers must treat that as
// fatal and refuse to start.
func LoadConfig(envFiles ...string) (*Config, error) {
	environ := map[string]string{}
	if len(envFiles) > 0 {
		fromFiles, err := godotenv.Read(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("read env files: %w", err)
		}
		environ = fromFiles
	}
	for k, v := range env.ToMap(os.Environ()) {
		environ[k] = v
	}
	return parseConfig(environ)
}

func parseConfig(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

// Logger returns a text slog.Logger writing to stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}
