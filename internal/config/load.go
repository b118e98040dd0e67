package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load layers the config file, when one is found, and then the command-line
// flags over Default, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = locate(".", Dir())
	}
	if path != "" {
		if err := merge(cfg, path); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// locate returns the config file in the first of dirs that has one.
func locate(dirs ...string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Dir is the per-user directory that Save writes to and Load searches.
func Dir() string {
	name := "skirmish"
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		name = "Skirmish"
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, name)
}

// merge overwrites the fields of cfg that the YAML file at path sets.
func merge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
