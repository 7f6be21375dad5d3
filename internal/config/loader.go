package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "armorcrush.yaml"

// Load reads the game configuration.
// Search order: customPath -> ~/.armorcrush/configs/armorcrush.yaml ->
// ./configs/armorcrush.yaml -> embedded default -> hardcoded default.
// Files are decoded over the hardcoded default, so they may be partial.
// Only a bad customPath is an error; unreadable fallbacks are skipped.
func Load(customPath string) (ArmorCrushConfig, error) {
	if customPath != "" {
		cfg := DefaultArmorCrushConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryFile(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultArmorCrushConfig()
	if err := yaml.Unmarshal(defaultArmorCrushYAML, &cfg); err != nil {
		return DefaultArmorCrushConfig(), nil
	}
	return cfg, nil
}

func tryFile(path string) (ArmorCrushConfig, bool) {
	cfg := DefaultArmorCrushConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".armorcrush", "configs", filename)
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultArmorCrushYAML...)
}
