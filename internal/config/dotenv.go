package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no .env path is given.
const DefaultEnvFile = ".env"

// LoadDotEnv loads variables from the .env file at path, or DefaultEnvFile
// when path is empty. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	return LoadDotEnvFromFiles(path)
}

// LoadDotEnvFromFiles loads each existing file in order. Variables already in
// the environment, including ones set by an earlier file, are kept.
func LoadDotEnvFromFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// LoadConfig builds an AppConfig from the environment after loading envPath.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}
	env, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, fmt.Errorf("read environment: %w", err)
	}
	return env.ToAppConfig(), nil
}
