/*
Package config loads generator settings from a TOML file.

Every setting has a default matching the consumer codebase so a missing file
is not an error; command line flags are applied on top by the caller.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bodgit/fixedgen/fixed"
	"github.com/bodgit/fixedgen/table"
)

// Config holds the settings shared by all generators.
type Config struct {
	FractBits    uint   `toml:"fract_bits"`
	Header       string `toml:"header"`
	AssertHeader string `toml:"assert_header"`
	Style        string `toml:"style"`
	RecipZero    string `toml:"recip_zero"`
	SinePeriod   int    `toml:"sine_period"`
	Colors       int    `toml:"colors"`
	Cache        string `toml:"cache"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		FractBits:    fixed.DefaultFractBits,
		Header:       "fixedpoint.h",
		AssertHeader: "assert.h",
		Style:        table.StyleExpr.String(),
		RecipZero:    table.ZeroMax.String(),
		SinePeriod:   table.SinePeriod,
	}
}

// Load reads file over the defaults. An empty name returns the defaults.
// The result is not validated so callers can apply overrides first.
func Load(file string) (*Config, error) {
	c := Default()
	if file == "" {
		return c, nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(b), c)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", file, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s: unknown key %q", file, undecoded[0].String())
	}

	return c, nil
}

// Format returns the fixed-point layout.
func (c *Config) Format() fixed.Format {
	return fixed.Format{FractBits: c.FractBits}
}

// Validate checks every setting can be used.
func (c *Config) Validate() error {
	if err := c.Format().Validate(); err != nil {
		return err
	}
	if _, err := table.ParseStyle(c.Style); err != nil {
		return err
	}
	if _, err := table.ParseZeroPolicy(c.RecipZero); err != nil {
		return err
	}
	if c.SinePeriod <= 0 || c.SinePeriod%4 != 0 {
		return fmt.Errorf("config: sine period %d is not a positive multiple of 4", c.SinePeriod)
	}
	if c.Colors != 0 && (c.Colors < 2 || c.Colors > 256) {
		return errors.New("config: colors must be 0 or between 2 and 256")
	}
	if c.Header == "" {
		return errors.New("config: header must not be empty")
	}
	return nil
}
