package logging

import (
	"fmt"
	"os"
)

// Env holds the environment variable names consulted by Finalize. A blank
// name disables that override.
type Env struct {
	Level  string
	Format string
}

// Config is the [logging] section of the service config.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills unset fields with info/text, lets the environment win
// over the file, and rejects unknown values.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := lookup(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := lookup(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}
	return nil
}

// Merge overwrites fields that the overlay sets.
func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
