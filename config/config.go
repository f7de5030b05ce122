package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "nutriscan-backend"
	EnvFileName = "config.env"

	defaultPort           = "3000"
	defaultCatalogBaseURL = "https://world.openfoodfacts.org"
)

// Config holds the process-wide configuration. It is loaded once at startup
// and passed explicitly to the components that need it; nothing else reads
// environment state directly.
type Config struct {
	GeminiAPIKey   string
	Port           string
	CatalogBaseURL string
}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// FromEnv builds a Config from environment variables. GEMINI_API_KEY is
// required; PORT and CATALOG_BASE_URL fall back to defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		Port:           os.Getenv("PORT"),
		CatalogBaseURL: os.Getenv("CATALOG_BASE_URL"),
	}
	if cfg.GeminiAPIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.CatalogBaseURL == "" {
		cfg.CatalogBaseURL = defaultCatalogBaseURL
	}
	return cfg, nil
}
