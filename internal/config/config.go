// Package config loads tool settings from defaults, an optional YAML
// file, and environment overrides, and turns threshold overrides into a
// validated vitals table.
package config

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"health-monitor/internal/vitals"
)

// Config holds all tunable settings.
type Config struct {
	LogLevel   string                     `yaml:"log_level"`
	Journal    JournalConfig              `yaml:"journal"`
	Thresholds map[string]ThresholdConfig `yaml:"thresholds"`
}

// JournalConfig bounds the in-memory evaluation journal.
type JournalConfig struct {
	MaxEvents int `yaml:"max_events"`
}

// ThresholdConfig overrides the range rules for one parameter.
// Omitted fields keep the built-in value.
type ThresholdConfig struct {
	Min   *float64     `yaml:"min"`
	Max   *float64     `yaml:"max"`
	Bands []BandConfig `yaml:"bands"`
}

// BandConfig is one category band in a threshold override.
// Upper is the exclusive upper bound; the last band must be `.inf`.
type BandConfig struct {
	Upper      float64 `yaml:"upper"`
	Status     string  `yaml:"status"`
	Severity   string  `yaml:"severity"` // ok, warning or critical
	Suggestion string  `yaml:"suggestion"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Journal:  JournalConfig{MaxEvents: 100},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path (if non-empty), then the LOG_LEVEL environment variable.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok && level != "" {
		cfg.LogLevel = level
	}

	if cfg.Journal.MaxEvents <= 0 {
		return Config{}, fmt.Errorf("config: journal max_events must be positive, got %d", cfg.Journal.MaxEvents)
	}

	return cfg, nil
}

// Table returns the built-in threshold table with any configured
// overrides applied and validated.
func (c Config) Table() (vitals.Table, error) {
	table := vitals.DefaultTable()

	// Apply overrides in a stable order so the first error is deterministic.
	names := make([]string, 0, len(c.Thresholds))
	for name := range c.Thresholds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := vitals.Parameter(name)
		if !p.Known() {
			return nil, fmt.Errorf("config: thresholds for unknown parameter %q", name)
		}

		rng := table[p]
		override := c.Thresholds[name]

		if override.Min != nil {
			rng.Limits.Min = *override.Min
		}
		if override.Max != nil {
			rng.Limits.Max = *override.Max
		}
		if len(override.Bands) > 0 {
			bands, err := parseBands(name, override.Bands)
			if err != nil {
				return nil, err
			}
			rng.Bands = bands
		}

		if rng.Limits.Min >= rng.Limits.Max {
			return nil, fmt.Errorf("config: %s limits min %g >= max %g", name, rng.Limits.Min, rng.Limits.Max)
		}

		table[p] = rng
	}

	return table, nil
}

func parseBands(name string, in []BandConfig) ([]vitals.Band, error) {
	out := make([]vitals.Band, 0, len(in))
	prev := math.Inf(-1)

	for i, bc := range in {
		if bc.Status == "" {
			return nil, fmt.Errorf("config: %s band %d has no status", name, i)
		}
		severity, err := parseSeverity(bc.Severity)
		if err != nil {
			return nil, fmt.Errorf("config: %s band %d: %w", name, i, err)
		}
		if bc.Upper <= prev {
			return nil, fmt.Errorf("config: %s band %d upper %g not ascending", name, i, bc.Upper)
		}
		prev = bc.Upper

		out = append(out, vitals.Band{
			Upper:      bc.Upper,
			Status:     vitals.Status(bc.Status),
			Severity:   severity,
			Suggestion: bc.Suggestion,
		})
	}

	if !math.IsInf(out[len(out)-1].Upper, 1) {
		return nil, fmt.Errorf("config: %s last band upper must be .inf", name)
	}
	return out, nil
}

func parseSeverity(s string) (vitals.Severity, error) {
	switch s {
	case "ok":
		return vitals.SeverityOK, nil
	case "warning":
		return vitals.SeverityWarning, nil
	case "critical":
		return vitals.SeverityCritical, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}
