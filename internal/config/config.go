// Package config loads the beacon's settings from a YAML file, layered
// over built-in defaults for a stock Raspberry Pi wiring.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	RoleTracker = "tracker"
	RoleRelay   = "relay"
)

type Config struct {
	Beacon BeaconConfig `yaml:"beacon"`
}

type BeaconConfig struct {
	Name   string       `yaml:"name"`
	Role   string       `yaml:"role"`
	Button ButtonConfig `yaml:"button"`
	LED    LEDConfig    `yaml:"led"`
	Scan   ScanConfig   `yaml:"scan"`
	GPS    GPSConfig    `yaml:"gps"`
	Report ReportConfig `yaml:"report"`

	// HTTP is the listen address for the diagnostics page, or "off".
	HTTP string `yaml:"http"`
}

type ButtonConfig struct {
	Chip       string `yaml:"chip"`
	Pin        int    `yaml:"pin"`
	PollMs     int    `yaml:"poll_ms"`
	DebounceMs int    `yaml:"debounce_ms"`
}

type LEDConfig struct {
	Chip     string `yaml:"chip"`
	RedPin   int    `yaml:"red_pin"`
	GreenPin int    `yaml:"green_pin"`
	BluePin  int    `yaml:"blue_pin"`
	BlinkHz  int    `yaml:"blink_hz"`
}

type ScanConfig struct {
	PeriodMs int `yaml:"period_ms"`
	WindowMs int `yaml:"window_ms"`
}

type GPSConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

type ReportConfig struct {
	URL   string `yaml:"url"`
	Param string `yaml:"param"`
	Topic string `yaml:"topic"`
}

// Default returns the settings for the reference wiring.
func Default() Config {
	return Config{Beacon: BeaconConfig{
		Name: "PeerBeacon",
		Role: RoleTracker,
		Button: ButtonConfig{
			Chip:       "gpiochip0",
			Pin:        17,
			PollMs:     10,
			DebounceMs: 500,
		},
		LED: LEDConfig{
			Chip:     "gpiochip0",
			RedPin:   22,
			GreenPin: 23,
			BluePin:  24,
			BlinkHz:  3,
		},
		Scan: ScanConfig{
			PeriodMs: 1000,
			WindowMs: 1000,
		},
		GPS: GPSConfig{
			Device: "/dev/ttyAMA0",
			Baud:   115200,
		},
		Report: ReportConfig{
			Param: "max_speed",
			Topic: "beacon/report",
		},
		HTTP: ":8080",
	}}
}

// Load reads path over the defaults. It does not validate; the caller
// applies flag overrides first and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
