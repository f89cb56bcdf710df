// Package config loads the cadence CLI configuration.
// It uses koanf v2 to read an optional YAML file; every field has a default
// so running without a config file works out of the box.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPath is the default location of the CLI configuration file.
const DefaultConfigPath = "cadence.yaml"

// Config holds CLI options loaded from the YAML config file. Flags override
// these values.
type Config struct {
	// SchedulesPath is the YAML file holding the schedule definitions.
	SchedulesPath string `koanf:"schedules_path"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info".
	LogLevel string `koanf:"log_level"`

	// HorizonMonths bounds occurrence enumeration for schedules without an
	// end date. Default: 3.
	HorizonMonths int `koanf:"horizon_months"`

	// DateLayout is the Go time layout used when rendering schedule
	// summaries. Default: "2006-01-02".
	DateLayout string `koanf:"date_layout"`
}

// Load reads configuration from the given YAML file path. A missing file is
// not an error: defaults are returned so the CLI can run unconfigured.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		return &cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SchedulesPath == "" {
		c.SchedulesPath = "schedules.yaml"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HorizonMonths == 0 {
		c.HorizonMonths = 3
	}
	if c.DateLayout == "" {
		c.DateLayout = "2006-01-02"
	}
}
