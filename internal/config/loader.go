package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlayground loads the playground scene.
// Search order: customPath -> ~/.gravbox/configs/playground.yaml ->
// ./configs/playground.yaml -> embedded default.
//
// A custom path is authoritative: any read, parse or validation failure is an
// error. The implicit locations are best-effort and fall through silently.
func LoadPlayground(customPath string) (PlaygroundConfig, error) {
	var cfg PlaygroundConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read scene %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse scene %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid scene %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("playground.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/playground.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultPlaygroundYAML, &cfg); err != nil {
		return DefaultPlaygroundConfig(), nil
	}
	return cfg, nil
}

// LoadPhysics loads standalone physics tuning overrides used by the built-in
// scenarios. Same search order as LoadPlayground, with the hardcoded engine
// defaults as the final fallback.
func LoadPhysics(customPath string) (PhysicsConfig, error) {
	var cfg PhysicsConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("physics.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/physics.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return DefaultPhysicsConfig(), nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravbox", "configs", filename)
}
