package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for tct, stored in ~/.tct/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// TargetKgPerWeek is the weekly CO₂e budget progress is measured against.
	TargetKgPerWeek float64 `json:"target_kg_per_week"`
	// DefaultTransport is the mode assumed by `tct commute` when none is given.
	DefaultTransport string `json:"default_transport"`
	// CommuteKm is the default one-way commute distance in km. Zero means
	// the distance must be passed on the command line.
	CommuteKm float64 `json:"commute_km"`
	// Timezone is the IANA timezone used for displaying entry times
	// (e.g. "Europe/Berlin"). Empty = local time.
	Timezone string `json:"timezone"`
}

const (
	// DefaultTargetKgPerWeek is a reasonable starting budget for one person.
	DefaultTargetKgPerWeek = 10.0
	// DefaultTransport is the mode used when none is configured.
	DefaultTransport = "car"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		TargetKgPerWeek:  DefaultTargetKgPerWeek,
		DefaultTransport: DefaultTransport,
		CommuteKm:        0,
		Timezone:         "",
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tct configuration – ~/.tct/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise tct behaviour.
{
  // Weekly CO₂e budget in kg. "tct status" shows progress against it.
  "target_kg_per_week": 10,

  // Transport mode assumed by "tct commute" when none is given on the
  // command line: car, bus, metro, taxi, motorbike, cycle, walk.
  "default_transport": "car",

  // Default one-way commute distance in km, e.g. 7.5.
  // Leave at 0 to always pass the distance explicitly.
  "commute_km": 0,

  // IANA timezone for displaying entry times, e.g. "Europe/Berlin".
  // Leave empty to use the system's local time.
  "timezone": ""
}
`

// configFilePath returns the path to ~/.tct/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tct", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tct/config.json, creating it with annotated defaults on first
// run. Lines starting with // are treated as comments and stripped before
// JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.TargetKgPerWeek <= 0 {
		cfg.TargetKgPerWeek = DefaultTargetKgPerWeek
	}
	if cfg.DefaultTransport == "" {
		cfg.DefaultTransport = DefaultTransport
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to local time.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown timezone %q, using local time\n", c.Timezone)
		return time.Local
	}
	return loc
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
