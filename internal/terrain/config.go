package terrain

import (
	"flag"
	"fmt"
	"strconv"
)

// Config controls a generation run.
type Config struct {
	Seed    string
	MapSize int

	Walkers int
	Steps   int

	// DrawScale is the pixel edge length of one cell in rendered output.
	DrawScale int
	Debug     bool

	// Workers bounds the goroutines used by the distance searches. Zero and
	// one both mean sequential.
	Workers int
	// Strict turns a missing salt or fresh water reference into an error
	// instead of skipping that field.
	Strict bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MapSize:   200,
		Walkers:   400,
		Steps:     300,
		DrawScale: 5,
		Workers:   1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MapSize = parsed
		}
	}
	if v, ok := cfg["walkers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Walkers = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DrawScale = parsed
		}
	}
	if v, ok := cfg["debug"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Debug = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Strict = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "generation seed (random when empty)")
	fs.IntVar(&c.MapSize, "size", c.MapSize, "map edge length in cells")
	fs.IntVar(&c.Walkers, "walkers", c.Walkers, "number of landmass walkers")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps per walker")
	fs.IntVar(&c.DrawScale, "scale", c.DrawScale, "pixels per cell")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log stage timings and render debug panels")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines for distance searches")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "fail when salt or fresh water is missing")
}

// Validate rejects configurations that cannot produce a map.
func (c Config) Validate() error {
	switch {
	case c.MapSize < 1:
		return fmt.Errorf("%w: map size %d must be positive", ErrInvalidConfig, c.MapSize)
	case c.Walkers < 1:
		return fmt.Errorf("%w: walker count %d must be positive", ErrInvalidConfig, c.Walkers)
	case c.Steps < 1:
		return fmt.Errorf("%w: steps %d must be positive", ErrInvalidConfig, c.Steps)
	case c.DrawScale < 1:
		return fmt.Errorf("%w: draw scale %d must be positive", ErrInvalidConfig, c.DrawScale)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}
