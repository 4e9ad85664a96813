package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application-level settings. LLM provider settings live in
// the llm package and are read from the same environment.
type Config struct {
	// LogMode selects the log encoder: "development" or "production".
	LogMode string `validate:"oneof=development production"`

	// LogFile is where logs are written. Empty means the default path
	// inside the data directory.
	LogFile string

	// DBPath overrides the event database location.
	DBPath string
}

// Load reads an optional .env file from the working directory, then the
// SAFETYPRO_* environment variables, and validates the result. Values
// already present in the environment win over the .env file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is like Load with explicit env file paths. Missing files are
// skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		LogMode: getEnv("SAFETYPRO_LOG_MODE", "development"),
		LogFile: os.Getenv("SAFETYPRO_LOG_FILE"),
		DBPath:  os.Getenv("SAFETYPRO_DB"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s=%q fails %q", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogPath resolves the log file location, defaulting to
// <dataDir>/safetypro.log.
func (c *Config) LogPath(dataDir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(dataDir, "safetypro.log")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
