// Package config loads server and client settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server configures cmd/api.
type Server struct {
	Addr            string `env:"GREENMASON_ADDR" envDefault:":8000"`
	DBPath          string `env:"GREENMASON_DB_PATH" envDefault:"greenmason.db"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-001"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	TTSVoice        string `env:"GREENMASON_TTS_VOICE" envDefault:"en-US-Neural2-F"`
	TTSLanguage     string `env:"GREENMASON_TTS_LANGUAGE" envDefault:"en-US"`
	RatePerMinute   int    `env:"GREENMASON_RATE_PER_MINUTE" envDefault:"120"`
	RateBurst       int    `env:"GREENMASON_RATE_BURST" envDefault:"20"`
	FrontendURL     string `env:"FRONTEND_URL"`
}

// Client configures cmd/greenmason. Flags override these values.
type Client struct {
	APIURL           string        `env:"GREENMASON_API_URL" envDefault:"http://localhost:8000"`
	SessionFile      string        `env:"GREENMASON_SESSION_FILE"`
	MaxDimension     int           `env:"GREENMASON_MAX_DIMENSION" envDefault:"1024"`
	JPEGQuality      float64       `env:"GREENMASON_JPEG_QUALITY" envDefault:"0.85"`
	NormalizeTimeout time.Duration `env:"GREENMASON_NORMALIZE_TIMEOUT" envDefault:"10s"`
	HTTPTimeout      time.Duration `env:"GREENMASON_HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadDotEnv reads .env files into the environment when present. Variables
// already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadClient() (Client, error) {
	var cfg Client
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Client) Validate() error {
	if c.MaxDimension <= 0 {
		return fmt.Errorf("GREENMASON_MAX_DIMENSION must be positive, got %d", c.MaxDimension)
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 1 {
		return fmt.Errorf("GREENMASON_JPEG_QUALITY must be in (0, 1], got %v", c.JPEGQuality)
	}
	if c.NormalizeTimeout <= 0 {
		return fmt.Errorf("GREENMASON_NORMALIZE_TIMEOUT must be positive, got %s", c.NormalizeTimeout)
	}
	return nil
}
