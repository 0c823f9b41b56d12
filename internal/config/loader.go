package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/folio"
	configFile = "config.json"
)

// ConfigPath returns the default config file path.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. A missing file yields the defaults.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
// Keys absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Lists replace the defaults wholesale; nil afterwards means absent.
	defaults := cfg.Portfolio
	cfg.Portfolio.Projects, cfg.Portfolio.Gradients, cfg.Portfolio.Images = nil, nil, nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Portfolio.Projects == nil {
		cfg.Portfolio.Projects = defaults.Projects
	}
	if cfg.Portfolio.Gradients == nil {
		cfg.Portfolio.Gradients = defaults.Gradients
	}
	if cfg.Portfolio.Images == nil {
		cfg.Portfolio.Images = defaults.Images
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
