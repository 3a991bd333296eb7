// Package config reads the optional motion.yaml file: default options
// for the demo panel and user-defined effect presets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/style"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "motion.yaml"

// Config represents the optional motion.yaml configuration.
type Config struct {
	Defaults Defaults          `yaml:"defaults"`
	Presets  map[string]Preset `yaml:"presets"`
	Demo     Demo              `yaml:"demo"`
}

// Defaults contains fallback option values.
type Defaults struct {
	Duration string `yaml:"duration,omitempty"` // time.ParseDuration string
	Effect   string `yaml:"effect,omitempty"`   // preset name
	Timing   string `yaml:"timing,omitempty"`   // CSS timing function
}

// Preset is a user-defined keyframe pair.
type Preset struct {
	From map[string]string `yaml:"from"`
	To   map[string]string `yaml:"to"`
}

// Demo configures the demo panel.
type Demo struct {
	Text   string `yaml:"text,omitempty"`
	Accent string `yaml:"accent,omitempty"` // color name or #hex
}

// LoadOptional reads motion.yaml from dir if present. A missing file is
// not an error and yields the zero configuration.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Options resolves the defaults section into controller options. Fields
// left empty stay zero so the motion defaults apply; a malformed
// duration is a real configuration error and is reported as one.
func (c *Config) Options() (motion.Options, error) {
	var opts motion.Options

	if raw := strings.TrimSpace(c.Defaults.Duration); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return motion.Options{}, fmt.Errorf("invalid defaults.duration %q: %w", raw, err)
		}
		opts.Duration = d
	}
	opts.Effect = motion.Effect{Preset: strings.TrimSpace(c.Defaults.Effect)}
	opts.TimingFunction = strings.TrimSpace(c.Defaults.Timing)

	return opts, nil
}

// RegisterPresets feeds every configured preset into the process-wide
// registry, so `effect: <name>` in defaults and on the command line can
// name them. Presets with an empty from or to bag are rejected.
func (c *Config) RegisterPresets() error {
	for name, preset := range c.Presets {
		kf := motion.Keyframes{
			From: style.Props(preset.From),
			To:   style.Props(preset.To),
		}
		if err := motion.RegisterPreset(name, kf); err != nil {
			return fmt.Errorf("motion.yaml: %w", err)
		}
	}
	return nil
}

// Accent resolves the demo accent color, falling back to steel blue
// when unset or unparseable.
func (c *Config) Accent() (r, g, b uint8) {
	if col, ok := style.ParseColor(c.Demo.Accent); ok {
		return col.R, col.G, col.B
	}
	return 0x46, 0x82, 0xB4
}
