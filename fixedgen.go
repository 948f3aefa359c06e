/*
Package fixedgen generates C source for the static data of a fixed-point
renderer: RGB555 textures converted from ordinary images, a reciprocal
lookup table and a quarter-period sine table.

Output is meant to be redirected into a generated source file at build time.
The consuming code provides fixed_t, FRACT_BITS, TO_FIXED and FIXED_MAX.
*/
package fixedgen

import (
	"log"

	"github.com/bodgit/fixedgen/cache"
	"github.com/bodgit/fixedgen/config"
)

// Generator produces generated source according to its configuration.
type Generator struct {
	cfg    *config.Config
	cache  *cache.Cache
	logger *log.Logger
}

// New returns a Generator using cfg. If cfg names a cache it is opened and
// must be released with Close.
func New(cfg *config.Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.Cache != "" {
		c, err := cache.Open(cfg.Cache)
		if err != nil {
			return nil, err
		}
		g.cache = c
	}

	return g, nil
}

// Close releases the texture cache, if any.
func (g *Generator) Close() error {
	if g.cache == nil {
		return nil
	}
	return g.cache.Close()
}
