package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// appName is the single source of truth for the application name; env var
// and config path names are derived from it.
const appName = "eltable"

var envConfigPath = strings.ToUpper(appName) + "_CONFIG"

type Config struct {
	ListenAddress     string `yaml:"listen_address"`
	DatabasePath      string `yaml:"database_path"`
	MaxReferenceDepth int    `yaml:"max_reference_depth"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddress:     ":8080",
		DatabasePath:      appName + ".db",
		MaxReferenceDepth: DefaultMaxReferenceDepth,
	}
}

// LoadConfig reads the YAML config file. Path priority: the explicit
// argument > $ELTABLE_CONFIG > ~/.config/eltable/config.yml. A missing
// resolved file yields the defaults; a missing explicit file is an error.
// $DATABASE_FILEPATH overrides the database path either way.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = resolveConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			err = yaml.Unmarshal(data, config)
			if err != nil {
				err = fmt.Errorf("config %s: %w", path, err)
			}
		} else if explicit || !os.IsNotExist(err) {
			return nil, err
		} else {
			err = nil
		}

		if err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("DATABASE_FILEPATH"); v != "" {
		config.DatabasePath = v
	}

	return config, nil
}

func resolveConfigPath() string {
	if v := os.Getenv(envConfigPath); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.yml")
}
