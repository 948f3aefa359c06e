package fixedgen

import (
	"fmt"
	"io"

	"github.com/bodgit/fixedgen/cgen"
	"github.com/bodgit/fixedgen/table"
)

// Largest reciprocal table that will be generated, 2^20 entries
const maxRecipBits = 20

func (g *Generator) decl(name string) (table.Decl, error) {
	style, err := table.ParseStyle(g.cfg.Style)
	if err != nil {
		return table.Decl{}, err
	}
	zero, err := table.ParseZeroPolicy(g.cfg.RecipZero)
	if err != nil {
		return table.Decl{}, err
	}
	return table.Decl{
		Name:   name,
		Type:   "fixed_t",
		Style:  style,
		Zero:   zero,
		Format: g.cfg.Format(),
	}, nil
}

func (g *Generator) assert(d *table.Decl) {
	if g.cfg.AssertHeader != "" {
		d.Includes = append(d.Includes, g.cfg.AssertHeader)
	}
	d.Includes = append(d.Includes, g.cfg.Header)
	d.Assert = fmt.Sprintf("FRACT_BITS == %d", g.cfg.FractBits)
}

// Reciprocal writes recipTable, the reciprocal of every fractional value,
// preceded by an assertion that the consumer uses the same number of
// fractional bits.
func (g *Generator) Reciprocal(w io.Writer) error {
	if g.cfg.FractBits > maxRecipBits {
		return fmt.Errorf("reciprocal table supports at most %d fractional bits", maxRecipBits)
	}

	d, err := g.decl("recipTable")
	if err != nil {
		return err
	}
	g.assert(&d)

	entries := table.Reciprocal(d.Format)
	g.logger.Printf("Generating %d reciprocal entries, zero policy %s\n", len(entries), d.Zero)

	cw := cgen.NewWriter(w)
	if err := table.Write(cw, d, entries); err != nil {
		return err
	}
	return cw.Flush()
}

// Sine writes sineTable, one quarter period of a sine wave plus the endpoint.
func (g *Generator) Sine(w io.Writer) error {
	d, err := g.decl("sineTable")
	if err != nil {
		return err
	}

	// Integer output depends on FRACT_BITS
	if d.Style == table.StyleInt {
		g.assert(&d)
	} else {
		d.Includes = []string{g.cfg.Header}
	}

	entries, err := table.Sine(g.cfg.SinePeriod)
	if err != nil {
		return err
	}
	g.logger.Printf("Generating %d sine entries for period %d\n", len(entries), g.cfg.SinePeriod)

	cw := cgen.NewWriter(w)
	if err := table.Write(cw, d, entries); err != nil {
		return err
	}
	return cw.Flush()
}
