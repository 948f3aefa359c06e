package table

import (
	"fmt"
	"strconv"

	"github.com/bodgit/fixedgen/cgen"
	"github.com/bodgit/fixedgen/fixed"
)

// Decl describes how a table is declared in the generated source.
type Decl struct {
	Name     string
	Type     string
	Includes []string
	// Assert is emitted as a static_assert if not empty
	Assert string
	Style  Style
	Zero   ZeroPolicy
	Format fixed.Format
}

func (d Decl) undefined() string {
	switch d.Zero {
	case ZeroMax:
		return "FIXED_MAX"
	default:
		return "0"
	}
}

func (d Decl) elements(entries []Entry) ([]string, error) {
	if d.Style == StyleInt {
		values, err := Fixed(entries, d.Format, d.Zero)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = strconv.FormatInt(int64(v), 10)
		}
		return out, nil
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		if !finite(e.Value) {
			if d.Zero == ZeroError {
				return nil, fmt.Errorf("entry %d: %w", i, ErrUndefined)
			}
			out[i] = d.undefined()
			continue
		}
		out[i] = "TO_FIXED(" + e.Literal + ")"
	}
	return out, nil
}

// Write emits the includes, optional assertion and the table. Nothing is
// written if any entry cannot be represented.
func Write(w *cgen.Writer, d Decl, entries []Entry) error {
	elements, err := d.elements(entries)
	if err != nil {
		return err
	}

	for _, h := range d.Includes {
		w.Include(h)
	}
	if d.Assert != "" {
		w.StaticAssert(d.Assert)
	}
	w.BeginArray(d.Type, d.Name)
	for _, e := range elements {
		w.Element(e)
	}
	w.EndArray()

	return w.Err()
}
