package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FORGE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, v := range []string{"FORGE_API_TOKEN", "FORGE_BASE_URL", "FORGE_TIMEOUT", "FORGE_OUTPUT"} {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", cfg.Timeout)
	}
	if cfg.Output != "table" {
		t.Errorf("expected table output, got %q", cfg.Output)
	}
}

func TestLoad_ProfileFile(t *testing.T) {
	path := writeProfile(t, "token: profile-token\nbase_url: https://forge.example.test\ntimeout: 10s\n")
	t.Setenv("FORGE_CONFIG", path)
	for _, v := range []string{"FORGE_API_TOKEN", "FORGE_BASE_URL", "FORGE_TIMEOUT"} {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "profile-token" {
		t.Errorf("token not read from profile: %q", cfg.Token)
	}
	if cfg.BaseURL != "https://forge.example.test" {
		t.Errorf("base URL not read from profile: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout not read from profile: %v", cfg.Timeout)
	}
}

func TestLoad_EnvOverridesProfile(t *testing.T) {
	path := writeProfile(t, "token: profile-token\n")
	t.Setenv("FORGE_CONFIG", path)
	t.Setenv("FORGE_API_TOKEN", "env-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "env-token" {
		t.Errorf("environment should win over profile, got %q", cfg.Token)
	}
}

func TestLoad_MalformedProfile(t *testing.T) {
	path := writeProfile(t, "token: [unclosed\n")
	t.Setenv("FORGE_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("malformed profile should fail Load")
	}
}
