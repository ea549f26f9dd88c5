// Package config loads and validates the optional blogguard YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fahmitech/blogguard/pkg/types"
	"github.com/fahmitech/blogguard/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is given.
func Default(path, label, marker string) *types.Config {
	return &types.Config{
		Version: "v1",
		Target: types.Target{
			Path:    path,
			Label:   label,
			Markers: types.Markers{marker},
		},
	}
}

// Load reads a YAML config file.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// SelectProfile resolves the target to check. Empty profile fields inherit
// from the base target.
func SelectProfile(cfg *types.Config, profile string) (types.Target, error) {
	if cfg == nil {
		return types.Target{}, fmt.Errorf("config is nil")
	}
	if len(cfg.Profiles) == 0 {
		if profile != "" {
			return types.Target{}, fmt.Errorf("profile %q not found", profile)
		}
		return cfg.Target, nil
	}

	name := profile
	if name == "" {
		if _, ok := cfg.Profiles["default"]; !ok {
			return cfg.Target, nil
		}
		name = "default"
	}
	p, ok := cfg.Profiles[name]
	if !ok {
		return types.Target{}, fmt.Errorf("profile %q not found", name)
	}

	out := cfg.Target
	if p.Path != "" {
		out.Path = p.Path
	}
	if p.Label != "" {
		out.Label = p.Label
	}
	if len(p.Markers) > 0 {
		out.Markers = p.Markers
	}
	return out, nil
}

// Validate normalizes marker case and applies the target checks.
func Validate(t *types.Target) error {
	if strings.TrimSpace(t.Path) == "" {
		return fmt.Errorf("target.path: must not be empty")
	}
	if t.Label != "" {
		if err := utils.ValidateLabel(t.Label); err != nil {
			return fmt.Errorf("target.label: %w", err)
		}
	}
	if len(t.Markers) == 0 {
		return fmt.Errorf("target.markers: at least one marker is required")
	}
	for i, m := range t.Markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if err := utils.ValidateMarker(m); err != nil {
			return fmt.Errorf("target.markers[%d]: %w", i, err)
		}
		t.Markers[i] = m
	}
	return nil
}
