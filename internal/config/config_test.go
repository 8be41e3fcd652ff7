package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beacon.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
beacon:
  name: Rover
  role: relay
  report:
    url: http://example.com/report
  button:
    pin: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	b := cfg.Beacon
	if b.Name != "Rover" || b.Role != RoleRelay {
		t.Errorf("name=%q role=%q", b.Name, b.Role)
	}
	if b.Button.Pin != 5 {
		t.Errorf("pin = %d", b.Button.Pin)
	}
	// Untouched fields keep their defaults.
	if b.Button.DebounceMs != 500 {
		t.Errorf("debounce = %d", b.Button.DebounceMs)
	}
	if b.GPS.Baud != 115200 {
		t.Errorf("baud = %d", b.GPS.Baud)
	}
	if b.Report.Param != "max_speed" {
		t.Errorf("param = %q", b.Report.Param)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "beacon: [broken")
	if _, err := Load(path); err == nil {
		t.Error("bad yaml should fail")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"empty name", func(c *Config) { c.Beacon.Name = "" }, true},
		{"non-ascii name", func(c *Config) { c.Beacon.Name = "bëacon" }, true},
		{"unknown role", func(c *Config) { c.Beacon.Role = "observer" }, true},
		{"relay without url", func(c *Config) { c.Beacon.Role = RoleRelay }, true},
		{"relay with url", func(c *Config) {
			c.Beacon.Role = RoleRelay
			c.Beacon.Report.URL = "http://example.com"
		}, false},
		{"negative button pin", func(c *Config) { c.Beacon.Button.Pin = -1 }, true},
		{"zero poll", func(c *Config) { c.Beacon.Button.PollMs = 0 }, true},
		{"duplicate led pins", func(c *Config) { c.Beacon.LED.GreenPin = c.Beacon.LED.RedPin }, true},
		{"zero blink", func(c *Config) { c.Beacon.LED.BlinkHz = 0 }, true},
		{"zero scan window", func(c *Config) { c.Beacon.Scan.WindowMs = 0 }, true},
		{"tracker without gps device", func(c *Config) { c.Beacon.GPS.Device = "" }, true},
		{"relay without gps device", func(c *Config) {
			c.Beacon.Role = RoleRelay
			c.Beacon.Report.URL = "http://example.com"
			c.Beacon.GPS.Device = ""
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
