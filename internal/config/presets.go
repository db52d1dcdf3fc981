package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"still": withConfig(func(c *Config) {
		c.Velocity.InitialDegrees = [3]float64{0, 0, 0}
	}),
	"tumble": withConfig(func(c *Config) {
		c.Velocity.InitialDegrees = [3]float64{90, 45, 30}
		c.Velocity.Multiplier = 2
	}),
	"gentle": withConfig(func(c *Config) {
		c.Velocity.InitialDegrees = [3]float64{5, 5, 0}
		c.Velocity.Multiplier = 0.25
	}),
	"gallery": withConfig(func(c *Config) {
		c.Replicas = 2
		c.Canvas.Rows = 16
	}),
}

func withConfig(mod func(*Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// LoadPreset is GetPreset with an error for unknown names.
func LoadPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
