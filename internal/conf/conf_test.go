package conf

import (
	"strings"
	"testing"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("FSOCIETY_DB_PATH", "")
	t.Setenv("DEBUG", "")

	cfg := LoadFromEnv()
	if cfg.Gemini.APIKey != "" {
		t.Error("api key not empty by default")
	}
	if cfg.Debug {
		t.Error("debug on by default")
	}
	if !strings.Contains(cfg.Store.DBPath, ".fsociety") {
		t.Errorf("db path = %q, want the home-directory default", cfg.Store.DBPath)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("FSOCIETY_DB_PATH", "/tmp/x.db")
	t.Setenv("DEBUG", "true")

	cfg := LoadFromEnv()
	if cfg.Gemini.APIKey != "k" || cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	if cfg.Store.DBPath != "/tmp/x.db" {
		t.Errorf("db path = %q", cfg.Store.DBPath)
	}
	if !cfg.Debug {
		t.Error("debug flag not picked up")
	}
}
