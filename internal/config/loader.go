package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrashPanda loads Trash Panda configuration.
// Search order: customPath -> ~/.arcade/configs/trashpanda.yaml -> ./configs/trashpanda.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
func LoadTrashPanda(customPath string) (TrashPandaConfig, error) {
	base := embeddedTrashPanda()

	// Custom path errors are reported; the user asked for that file
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("trashpanda.yaml"), filepath.Join("configs", "trashpanda.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedTrashPanda decodes the embedded default YAML.
func embeddedTrashPanda() TrashPandaConfig {
	cfg := DefaultTrashPandaConfig()
	if err := yaml.Unmarshal(defaultTrashPandaYAML, &cfg); err != nil {
		return DefaultTrashPandaConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
