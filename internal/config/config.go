package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend selects how triggers are dispatched.
type Backend string

const (
	BackendAudio Backend = "audio"
	BackendMIDI  Backend = "midi"
)

// SweepConfig holds the playhead parameters.
type SweepConfig struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Velocity  float64 `json:"velocity"`
	Tolerance float64 `json:"tolerance"`
}

// UIConfig stores window preferences.
type UIConfig struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Sweep     SweepConfig `json:"sweep"`
	Backend   Backend     `json:"backend,omitempty"`
	MIDIPort  string      `json:"midiPort,omitempty"`
	SampleDir string      `json:"sampleDir,omitempty"`
	LogLevel  string      `json:"logLevel,omitempty"`
	UI        UIConfig    `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			Min:       -100,
			Max:       100,
			Velocity:  0.5,
			Tolerance: 1.0,
		},
		Backend:   BackendAudio,
		SampleDir: "samples",
		LogLevel:  "info",
		UI:        UIConfig{Width: 800, Height: 600},
	}
}

// Validate rejects parameter combinations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Sweep.Max <= c.Sweep.Min {
		return fmt.Errorf("config: sweep bounds [%v, %v] are empty", c.Sweep.Min, c.Sweep.Max)
	}
	if c.Sweep.Velocity <= 0 {
		return fmt.Errorf("config: sweep velocity %v must be > 0", c.Sweep.Velocity)
	}
	if c.Sweep.Tolerance <= 0 {
		return fmt.Errorf("config: trigger tolerance %v must be > 0", c.Sweep.Tolerance)
	}
	switch c.Backend {
	case BackendAudio, BackendMIDI:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "planebeat"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file, falling back to defaults when it is missing.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config, creating the directory if needed.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
