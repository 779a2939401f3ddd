package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.ColumnCount != 3 {
		t.Fatalf("default column count = %d, want 3", cfg.ColumnCount)
	}
	if got := cfg.Keys["control-Mod1-KP_5"]; got != "center" {
		t.Fatalf("KP_5 binding = %q, want center", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.ColumnCount != Default().ColumnCount {
		t.Fatalf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, strings.TrimSpace(`
column_count: 2
margin:
  x_percent: 1.5
keys:
  control-Mod1-m: maximize
`))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.ColumnCount != 2 {
		t.Fatalf("column_count = %d, want 2", cfg.ColumnCount)
	}
	if cfg.Margin.XPercent != 1.5 {
		t.Fatalf("margin.x_percent = %g, want 1.5", cfg.Margin.XPercent)
	}
	// Untouched fields keep their defaults.
	if cfg.CycleTolerance != 0.1 {
		t.Fatalf("cycle_tolerance = %g, want default 0.1", cfg.CycleTolerance)
	}
	if !cfg.DBus.Enabled {
		t.Fatal("dbus should stay enabled by default")
	}
}

func TestLoadFromPath_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "colum_count: 2\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("misspelled field should be rejected")
	}
}

func TestLoadFromPath_CustomCommands(t *testing.T) {
	path := writeConfig(t, strings.TrimSpace(`
custom_commands:
  reading:
    - {x: 0.25, y: 0, width: 0.5, height: 1}
    - {x: 0, y: 0, width: 1, height: 1}
`))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	presets, ok := cfg.CustomCommands["reading"]
	if !ok || len(presets) != 2 {
		t.Fatalf("custom commands = %+v", cfg.CustomCommands)
	}
	if presets[0].Width != 0.5 {
		t.Fatalf("preset width = %g, want 0.5", presets[0].Width)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero columns", func(c *Config) { c.ColumnCount = 0 }},
		{"tolerance too high", func(c *Config) { c.CycleTolerance = 1.5 }},
		{"tolerance zero", func(c *Config) { c.CycleTolerance = 0 }},
		{"negative margin", func(c *Config) { c.Margin.XPercent = -1 }},
		{"margin eats monitor", func(c *Config) { c.Margin.YPercent = 50 }},
		{"empty key binding", func(c *Config) { c.Keys = map[string]string{"": "left"} }},
		{"custom without presets", func(c *Config) {
			c.CustomCommands = map[string][]PresetGeom{"empty": {}}
		}},
		{"custom zero width", func(c *Config) {
			c.CustomCommands = map[string][]PresetGeom{"bad": {{Width: 0, Height: 1}}}
		}},
		{"custom x out of range", func(c *Config) {
			c.CustomCommands = map[string][]PresetGeom{"bad": {{X: 1.2, Width: 0.5, Height: 0.5}}}
		}},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.CustomCommands = map[string][]PresetGeom{
		"reading": {{X: 0.25, Width: 0.5, Height: 1}},
	}
	dump, err := cfg.Dump()
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	path := writeConfig(t, dump)
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload dumped config: %v", err)
	}
	if loaded.ColumnCount != cfg.ColumnCount || len(loaded.CustomCommands) != 1 {
		t.Fatalf("round trip changed config: %+v", loaded)
	}
}

func TestSortedKeys(t *testing.T) {
	cfg := &Config{Keys: map[string]string{
		"b-key": "left",
		"a-key": "right",
	}}
	got := cfg.SortedKeys()
	if len(got) != 2 || got[0] != "a-key" || got[1] != "b-key" {
		t.Fatalf("SortedKeys = %v", got)
	}
}
