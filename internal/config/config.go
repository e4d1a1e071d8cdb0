// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// FindEnvFile returns the .env file of the current or parent directory, or "" when
// there is none.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from a .env file if one exists. It runs once
// per process and returns the file that was loaded, if any. Variables already set
// in the environment are not overridden.
func LoadEnv() (string, error) {
	var (
		loaded  string
		loadErr error
	)
	once.Do(func() {
		envFile := FindEnvFile()
		if envFile == "" {
			return
		}
		if err := godotenv.Load(envFile); err != nil {
			loadErr = err
			return
		}
		loaded = envFile
	})
	return loaded, loadErr
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
