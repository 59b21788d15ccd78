package life

import "strconv"

// Config controls the dimensions and seeding of a Life simulation.
type Config struct {
	Width  uint32
	Height uint32
	Seed   int64
	Empty  bool
}

// DefaultConfig returns the basic 64x64 configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 42}
}

// ExtendedConfig returns the larger 128x128 configuration.
func ExtendedConfig() Config {
	c := DefaultConfig()
	c.Width = 128
	c.Height = 128
	return c
}

// FromMap populates a Config from a string map. Unknown keys and values that
// fail to parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["variant"]; ok && v == "extended" {
		c = ExtendedConfig()
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Height = uint32(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["empty"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Empty = parsed
		}
	}
	return c
}
