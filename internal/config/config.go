package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config is the contents of config.yaml.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Serve    ServeConfig    `yaml:"serve"`
	Log      LogConfig      `yaml:"log"`
	Save     SaveConfig     `yaml:"save"`
}

// RegistryConfig selects where projects are kept between runs.
type RegistryConfig struct {
	Driver string `yaml:"driver"` // file | sqlite
}

// ServeConfig controls `previewsync serve`.
type ServeConfig struct {
	Addr string `yaml:"addr"`
	// LiveRenderSurface makes saves push the saved project to connected
	// previews. Defaults to true.
	LiveRenderSurface *bool `yaml:"live_render_surface"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// SaveConfig holds the strings of the save dialog.
type SaveConfig struct {
	Extension    string `yaml:"extension"`
	FallbackName string `yaml:"fallback_name"`
	DialogTitle  string `yaml:"dialog_title"`
	FilterName   string `yaml:"filter_name"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Registry.Driver == "" {
		c.Registry.Driver = DriverFile
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = "127.0.0.1:1338"
	}
	if c.Serve.LiveRenderSurface == nil {
		live := true
		c.Serve.LiveRenderSurface = &live
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Save.Extension == "" {
		c.Save.Extension = "alva"
	}
	c.Save.Extension = strings.TrimPrefix(c.Save.Extension, ".")
	if c.Save.FallbackName == "" {
		c.Save.FallbackName = "New Project"
	}
	if c.Save.DialogTitle == "" {
		c.Save.DialogTitle = "Save Alva File"
	}
	if c.Save.FilterName == "" {
		c.Save.FilterName = "Alva File"
	}
}

func (c *Config) validate() error {
	switch c.Registry.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unknown registry driver %q", c.Registry.Driver)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LiveRenderSurface reports whether saves push to connected previews.
func (c *Config) LiveRenderSurface() bool {
	return c.Serve.LiveRenderSurface == nil || *c.Serve.LiveRenderSurface
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
