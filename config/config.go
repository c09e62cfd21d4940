// Package config loads lightemall settings from YAML.
//
// Missing keys keep their defaults, so a file only needs the values it
// changes:
//
//	width: 12
//	height: 8
//	method: prim
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds board and front-end settings.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`   // 0 lets the front end pick one
	Method string `yaml:"method"` // kruskal | prim

	LockOnSolve bool `yaml:"lock_on_solve"`
	Mute        bool `yaml:"mute"`
	TickMS      int  `yaml:"tick_ms"`
}

// Default returns a 10x10 Kruskal board that locks when solved and ticks
// once per second.
func Default() Config {
	return Config{
		Width:       10,
		Height:      10,
		Seed:        0,
		Method:      prim_kruskal.MethodKruskal,
		LockOnSolve: true,
		Mute:        false,
		TickMS:      1000,
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize canonicalises free-form fields.
func (c *Config) Normalize() {
	c.Method = strings.ToLower(strings.TrimSpace(c.Method))
	if c.Method == "" {
		c.Method = prim_kruskal.MethodKruskal
	}
}

// Validate rejects non-positive dimensions, unknown methods and a
// non-positive tick.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Width, c.Height)
	}
	switch c.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: method %q", ErrInvalid, c.Method)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms %d", ErrInvalid, c.TickMS)
	}
	return nil
}
