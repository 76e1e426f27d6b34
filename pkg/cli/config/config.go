// Package config loads forgectl configuration. Precedence: environment
// variables over the YAML profile over built-in defaults; a .env file in
// the working directory is honored before either.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL mirrors the client's production endpoint.
const DefaultBaseURL = "https://forge.laravel.com/api/v1"

// Config holds everything forgectl needs to talk to the API.
type Config struct {
	Token   string        `env:"FORGE_API_TOKEN" yaml:"token"`
	BaseURL string        `env:"FORGE_BASE_URL" yaml:"base_url"`
	Timeout time.Duration `env:"FORGE_TIMEOUT" yaml:"timeout"`
	Output  string        `env:"FORGE_OUTPUT" yaml:"output"`
}

// Load reads the profile file and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if path := profilePath(); path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Output == "" {
		cfg.Output = "table"
	}
	return cfg, nil
}

// profilePath is $FORGE_CONFIG when set, else
// ~/.config/forgectl/config.yaml.
func profilePath() string {
	if p := os.Getenv("FORGE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "forgectl", "config.yaml")
}
