package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config aggregates every definition file under the config dir.
type Config struct {
	Effects   EffectsConfig
	Abilities AbilitiesConfig
	Items     ItemsConfig
	Squads    SquadsConfig
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func LoadAll(dir string) (*Config, error) {
	var cfg Config
	if err := loadYAML(filepath.Join(dir, "effects.yaml"), &cfg.Effects); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "abilities.yaml"), &cfg.Abilities); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "items.yaml"), &cfg.Items); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "squads.yaml"), &cfg.Squads); err != nil {
		return nil, err
	}
	return &cfg, nil
}
