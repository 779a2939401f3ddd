// Package config loads and validates the snaptile YAML configuration.
package config

import (
	"fmt"
	"sort"
)

// Margin holds per-axis margins as percentages (0-100) of the monitor
// dimensions, applied to every generated preset.
type Margin struct {
	XPercent float64 `yaml:"x_percent"`
	YPercent float64 `yaml:"y_percent"`
}

// PresetGeom is one fractional geometry in a custom command's cycle list.
// All fields are fractions of the monitor's usable area.
type PresetGeom struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DBus controls the session-bus command interface.
type DBus struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the effective snaptile configuration.
type Config struct {
	// ColumnCount is the number of columns the preset table is generated
	// for ("left third", "left two-thirds", ...).
	ColumnCount int `yaml:"column_count"`
	// CycleTolerance is the fraction of the monitor diagonal within which a
	// window counts as already being on a preset.
	CycleTolerance float64 `yaml:"cycle_tolerance"`
	Margin         Margin  `yaml:"margin"`
	// Keys maps xgbutil key sequences ("control-Mod1-KP_4") to command names.
	Keys map[string]string `yaml:"keys"`
	DBus DBus              `yaml:"dbus"`
	// CustomCommands defines extra cycling commands from fractional presets.
	CustomCommands map[string][]PresetGeom `yaml:"custom_commands"`
}

// Default returns the built-in configuration: three columns, numpad
// bindings in the classic WinSplit arrangement, D-Bus enabled.
func Default() *Config {
	return &Config{
		ColumnCount:    3,
		CycleTolerance: 0.1,
		Keys: map[string]string{
			"control-Mod1-KP_1": "bottom-left",
			"control-Mod1-KP_2": "bottom",
			"control-Mod1-KP_3": "bottom-right",
			"control-Mod1-KP_4": "left",
			"control-Mod1-KP_5": "center",
			"control-Mod1-KP_6": "right",
			"control-Mod1-KP_7": "top-left",
			"control-Mod1-KP_8": "top",
			"control-Mod1-KP_9": "top-right",
			"control-Mod1-KP_0": "maximize",
			"control-Mod1-c":    "move-to-center",
		},
		DBus: DBus{Enabled: true},
	}
}

// Validate checks ranges and rejects values the engine cannot work with.
func (c *Config) Validate() error {
	if c.ColumnCount < 1 {
		return fmt.Errorf("column_count must be at least 1, got %d", c.ColumnCount)
	}
	if c.CycleTolerance <= 0 || c.CycleTolerance > 1 {
		return fmt.Errorf("cycle_tolerance must be in (0, 1], got %g", c.CycleTolerance)
	}
	if c.Margin.XPercent < 0 || c.Margin.XPercent >= 50 {
		return fmt.Errorf("margin.x_percent must be in [0, 50), got %g", c.Margin.XPercent)
	}
	if c.Margin.YPercent < 0 || c.Margin.YPercent >= 50 {
		return fmt.Errorf("margin.y_percent must be in [0, 50), got %g", c.Margin.YPercent)
	}
	for key, command := range c.Keys {
		if key == "" || command == "" {
			return fmt.Errorf("keys entries must map a key sequence to a command name")
		}
	}
	for name, presets := range c.CustomCommands {
		if name == "" {
			return fmt.Errorf("custom command names must not be empty")
		}
		if len(presets) == 0 {
			return fmt.Errorf("custom command %q has no presets", name)
		}
		for i, p := range presets {
			if err := validateFraction(p.X, "x"); err != nil {
				return fmt.Errorf("custom command %q preset %d: %w", name, i, err)
			}
			if err := validateFraction(p.Y, "y"); err != nil {
				return fmt.Errorf("custom command %q preset %d: %w", name, i, err)
			}
			if p.Width <= 0 || p.Width > 1 {
				return fmt.Errorf("custom command %q preset %d: width must be in (0, 1], got %g", name, i, p.Width)
			}
			if p.Height <= 0 || p.Height > 1 {
				return fmt.Errorf("custom command %q preset %d: height must be in (0, 1], got %g", name, i, p.Height)
			}
		}
	}
	return nil
}

func validateFraction(f float64, field string) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %g", field, f)
	}
	return nil
}

// SortedKeys returns the key bindings in deterministic order for display.
func (c *Config) SortedKeys() []string {
	keys := make([]string, 0, len(c.Keys))
	for k := range c.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
