package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/mealfinder/pkg/errors"
)

const appDirName = "mealfinder"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
// Keys absent from the file keep their Default values.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load resolves the configuration for a run. An explicit path must exist;
// when path is empty the default location is tried and a missing file
// yields Default.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			d := Default()
			cfg = &d
		} else {
			return nil, err
		}
	}

	if err := resolveStoragePath(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns <user-config-dir>/mealfinder/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, "config.yaml"), nil
}

func resolveStoragePath(cfg *Config) error {
	if cfg.Storage.Path != "" || cfg.Storage.Backend == BackendMemory {
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("resolve storage directory: %w", err)
	}

	name := "preferences.json"
	if cfg.Storage.Backend == BackendBolt {
		name = "preferences.db"
	}
	cfg.Storage.Path = filepath.Join(dir, appDirName, name)
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
