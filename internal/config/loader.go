package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in defaults as a config source.
const SourceEmbedded = "embedded defaults"

// LoadJumper loads the game constants and reports where they came from.
// Search order: customPath -> ~/.jumper/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// Files overlay the defaults, so they only need the keys they change.
// A broken customPath is an error; broken files further down are skipped.
func LoadJumper(customPath string) (JumperConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "jumper.yaml")
	if cfg, err := loadFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (JumperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultJumperConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", filename)
}
