/*
Package table generates fixed-point lookup tables.

Two tables are provided: reciprocals of every fractional value representable
with the configured number of fractional bits, and one quarter period of a
sine wave. Entries keep both the real value and the decimal expression the C
side feeds to TO_FIXED, so a table can be emitted either as expressions the
consumer scales itself or as pre-computed integers.
*/
package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bodgit/fixedgen/fixed"
)

// SinePeriod is the number of steps in one full turn.
const SinePeriod = 65536

var (
	// ErrUndefined is returned for an entry with no finite value when the
	// policy is ZeroError
	ErrUndefined = errors.New("table: value is undefined")

	errBadPeriod = errors.New("table: period must be a positive multiple of 4")
)

// Entry is one element of a table.
type Entry struct {
	// Value is the real number the entry represents
	Value float64
	// Literal is the C expression for Value
	Literal string
}

// Reciprocal returns 1/x for every x = i / 2^FractBits, i ascending from 0.
// The first entry is +Inf. Every x is exact in binary so the literal is
// printed exactly.
func Reciprocal(f fixed.Format) []Entry {
	one := f.One()
	entries := make([]Entry, int(one))
	for i := range entries {
		x := float64(i) / one
		entries[i] = Entry{
			Value:   1 / x,
			Literal: "1.0/" + floatLiteral(x),
		}
	}
	return entries
}

// floatLiteral formats v with the fewest digits that round trip, always
// leaving it recognisable to a C compiler as a double.
func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Sine returns sin(i * 2pi / period) for i from 0 to period/4 inclusive.
// The rest of the wave is recovered by symmetry on the consumer side.
func Sine(period int) ([]Entry, error) {
	if period <= 0 || period%4 != 0 {
		return nil, errBadPeriod
	}

	entries := make([]Entry, period/4+1)
	for i := range entries {
		v := math.Sin(float64(i) * 2 * math.Pi / float64(period))
		entries[i] = Entry{
			Value:   v,
			Literal: floatLiteral(v),
		}
	}
	return entries, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Fixed converts entries to fixed-point. Entries without a finite value are
// resolved by policy.
func Fixed(entries []Entry, f fixed.Format, policy ZeroPolicy) ([]fixed.Fixed, error) {
	out := make([]fixed.Fixed, len(entries))
	for i, e := range entries {
		if !finite(e.Value) {
			switch policy {
			case ZeroMax:
				out[i] = fixed.Max
			case ZeroZero:
				out[i] = 0
			default:
				return nil, fmt.Errorf("entry %d: %w", i, ErrUndefined)
			}
			continue
		}
		n, err := f.ToFixed(e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}
