package cmd

import (
	"os"
	"strings"
)

const (
	defaultCatalogFile = "catalog.yaml"
	defaultLogLevel    = "info"
)

// Config holds the settings of the catalog tools. Values come from the
// process environment, which main seeds from an optional .env file.
type Config struct {
	CatalogFile string
	LogLevel    string
}

// LoadConfig reads CATALOG_FILE and LOG_LEVEL, falling back to defaults for
// unset or blank variables.
func LoadConfig() Config {
	return Config{
		CatalogFile: envOrDefault("CATALOG_FILE", defaultCatalogFile),
		LogLevel:    strings.ToLower(envOrDefault("LOG_LEVEL", defaultLogLevel)),
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
