package conf

import (
	"os"
	"path/filepath"
)

// Config represents application configuration
type Config struct {
	// Gemini configuration (optional; the feed degrades gracefully
	// without it)
	Gemini GeminiConfig

	// Store configuration
	Store StoreConfig

	// Debug mode
	Debug bool
}

// GeminiConfig contains safety/generation service configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// StoreConfig contains local persistence configuration
type StoreConfig struct {
	DBPath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	dbPath := os.Getenv("FSOCIETY_DB_PATH")
	if dbPath == "" {
		homeDir, _ := os.UserHomeDir()
		dbPath = filepath.Join(homeDir, ".fsociety", "state.db")
	}

	return &Config{
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		},
		Store: StoreConfig{
			DBPath: dbPath,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}
}
