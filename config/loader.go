package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LocalPath is checked when no explicit path is given.
const LocalPath = "configs/dreamhop.yaml"

// Load resolves the configuration.
// Search order: customPath -> ./configs/dreamhop.yaml -> embedded default.
// Keys missing from a file keep their Default() value.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return Parse(data)
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		return Parse(data)
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
