// Package config loads the calculator settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
)

// Config represents the application configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// OutputConfig controls how results are rendered by the CLI.
type OutputConfig struct {
	Format    string `toml:"format"`     // table, plain, json
	ShowStars bool   `toml:"show_stars"` // Also rank by stars
	Color     bool   `toml:"color"`
}

// ServerConfig contains settings for the HTTP front end.
type ServerConfig struct {
	Addr string `toml:"addr"`
	Mode string `toml:"mode"` // debug, release
}

const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format:    FormatTable,
			ShowStars: false,
			Color:     true,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path or a missing file yields the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatTable, FormatPlain, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q", c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	return nil
}

// LogLevel returns the configured level as a pterm log level.
func (c *Config) LogLevel() (pterm.LogLevel, error) {
	switch c.Log.Level {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", c.Log.Level)
}
