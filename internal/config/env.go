package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order before the config file is read.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from the first .env file present.
// Variables already set in the process environment are never overridden.
func loadEnvFile() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return godotenv.Load(path)
	}
	return nil
}

// FormatEnv overrides output.format when the CLI flag is not given.
const FormatEnv = "DOCFRAG_FORMAT"

// ResolveFormat resolves the output format name.
// Priority: CLI flag > DOCFRAG_FORMAT > config output.format.
func ResolveFormat(flagFormat string, cfg *Config) string {
	if flagFormat != "" {
		return flagFormat
	}
	if env := os.Getenv(FormatEnv); env != "" {
		return env
	}
	if cfg != nil && cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return Default().Output.Format
}
