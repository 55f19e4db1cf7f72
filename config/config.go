// Package config holds the runtime settings of the gridmap tools.
//
// Settings start from Default, are overridden by GRIDMAP_* environment
// variables and finally by command-line flags.
package config

import (
	"errors"
	"fmt"
	"gridmap/core"
	"gridmap/render"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvServer   = "GRIDMAP_SERVER"
	EnvCellSize = "GRIDMAP_CELL_SIZE"
	EnvCost     = "GRIDMAP_COST"
	EnvLang     = "GRIDMAP_LANG"
	EnvLog      = "GRIDMAP_LOG"
	EnvTimeout  = "GRIDMAP_TIMEOUT"
	EnvPalette  = "GRIDMAP_PALETTE"
)

// Config is the complete set of settings.
type Config struct {
	ServerURL string        // search service base URL
	CellSize  int           // terminal pixels per cell side
	Cost      int           // initial weighted-cell cost
	Language  string        // message catalog, "" for the environment locale
	LogFile   string        // log destination, "" to discard
	Timeout   time.Duration // per-request timeout
	Palette   string        // palette name, see render.PaletteByName
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:5001",
		CellSize:  2,
		Cost:      1,
		Timeout:   30 * time.Second,
		Palette:   "default",
	}
}

// ApplyEnv overrides c with the GRIDMAP_* variables found by lookup,
// normally os.LookupEnv. Unparseable numbers are reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvServer); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := lookup(EnvCellSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCellSize, err))
		} else {
			c.CellSize = n
		}
	}
	if v, ok := lookup(EnvCost); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCost, err))
		} else {
			c.Cost = n
		}
	}
	if v, ok := lookup(EnvLang); ok {
		c.Language = v
	}
	if v, ok := lookup(EnvLog); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTimeout, err))
		} else {
			c.Timeout = d
		}
	}
	if v, ok := lookup(EnvPalette); ok && v != "" {
		c.Palette = v
	}

	return errors.Join(errs...)
}

// FromEnv returns the defaults overridden by the environment.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	err := c.ApplyEnv(lookup)
	return c, err
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid server URL %q", c.ServerURL))
	}
	if c.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.Cost < 1 || c.Cost > core.MaxWeightedCost {
		errs = append(errs, fmt.Errorf("cost must be between 1 and %d, got %d", core.MaxWeightedCost, c.Cost))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if _, ok := render.PaletteByName(c.Palette); !ok {
		errs = append(errs, fmt.Errorf("unknown palette %q", c.Palette))
	}

	return errors.Join(errs...)
}

// LanguageOr returns the configured language, falling back to the first
// non-empty locale variable value in fallbacks.
func (c Config) LanguageOr(fallbacks ...string) string {
	if c.Language != "" {
		return c.Language
	}
	for _, f := range fallbacks {
		if f = strings.TrimSpace(f); f != "" {
			return f
		}
	}
	return ""
}
