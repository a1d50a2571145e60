// Package config loads lv's settings: defaults, then the YAML file in the XDG
// config directory, then LV_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// RelPath is the config file location relative to the XDG config home.
const RelPath = "lv/config.yaml"

// EnvPrefix prefixes every environment override, e.g. LV_THEME.
const EnvPrefix = "LV_"

// Config is the on-disk and environment form of the settings.
type Config struct {
	Theme      string  `yaml:"theme" env:"THEME"`
	Color      string  `yaml:"color" env:"COLOR"`
	Size       string  `yaml:"size" env:"SIZE"`
	Rotation   float64 `yaml:"rotation" env:"ROTATION"`
	SearchMode string  `yaml:"search_mode" env:"SEARCH_MODE"`
	AssetsDir  string  `yaml:"assets_dir,omitempty" env:"ASSETS_DIR"`
	NoHistory  bool    `yaml:"no_history,omitempty" env:"NO_HISTORY"` // Skip the copy history database
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:      "dark",
		Color:      style.White.Hex(),
		Size:       style.Large.String(),
		Rotation:   0,
		SearchMode: search.Substring.String(),
	}
}

// Path returns the config file in use: the first existing lv/config.yaml on
// the XDG search path, or where it would be created in the config home.
func Path() string {
	if p, err := xdg.SearchConfigFile(RelPath); err == nil {
		return p
	}
	return filepath.Join(xdg.ConfigHome, RelPath)
}

// Load reads the config at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Settings(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile is Load without the LV_* environment layer: only what the file on
// disk says, over the defaults.
func LoadFile(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	if _, err := cfg.Settings(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save validates c and writes it to path, creating parent directories.
func Save(path string, c Config) error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Settings is Config parsed into typed values.
type Settings struct {
	Dark        bool
	Color       style.Color
	Size        style.Size
	RotationDeg float64
	Mode        search.Mode
	AssetsDir   string
	History     bool
}

// Settings validates c and parses every field.
func (c Config) Settings() (Settings, error) {
	var s Settings
	var errs []error

	switch strings.ToLower(strings.TrimSpace(c.Theme)) {
	case "", "dark":
		s.Dark = true
	case "light":
	default:
		errs = append(errs, fmt.Errorf("theme: unknown theme %q (want dark or light)", c.Theme))
	}

	var err error
	if s.Color, err = style.LookupColor(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if s.Size, err = style.ParseSize(c.Size); err != nil {
		errs = append(errs, fmt.Errorf("size: %w", err))
	}
	if s.Mode, err = search.ParseMode(c.SearchMode); err != nil {
		errs = append(errs, fmt.Errorf("search_mode: %w", err))
	}
	s.RotationDeg = c.Rotation
	s.AssetsDir = c.AssetsDir
	s.History = !c.NoHistory

	return s, errors.Join(errs...)
}
