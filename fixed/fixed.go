/*
Package fixed describes the signed fixed-point representation shared by every
generated table.

A value is stored as an int32 scaled by 2^FractBits. The consuming C library
defines the same scale as FRACT_BITS and converts with TO_FIXED; both sides
must agree, so the width lives here once and is also emitted as a
static_assert in generated output.
*/
package fixed

import (
	"errors"
	"fmt"
	"math"
)

// DefaultFractBits is the number of fractional bits used by the consumer.
const DefaultFractBits = 15

const maxFractBits = 30

// Fixed is a fixed-point value.
type Fixed int32

// Max is the largest representable value, FIXED_MAX on the C side.
const Max Fixed = math.MaxInt32

var (
	// ErrNotFinite is returned when converting NaN or an infinity
	ErrNotFinite = errors.New("fixed: value is not finite")
	// ErrOverflow is returned when a value does not fit in 32 bits
	ErrOverflow = errors.New("fixed: value out of range")
)

// Format is a fixed-point layout.
type Format struct {
	FractBits uint
}

// Default is the layout expected by the consumer.
var Default = Format{FractBits: DefaultFractBits}

// Validate checks the layout leaves room for at least one integer bit and the
// sign.
func (f Format) Validate() error {
	if f.FractBits > maxFractBits {
		return fmt.Errorf("fixed: %d fractional bits exceeds maximum of %d", f.FractBits, maxFractBits)
	}
	return nil
}

// One returns the scale factor, 2^FractBits.
func (f Format) One() float64 {
	return float64(uint64(1) << f.FractBits)
}

// ToFixed converts x, rounding half away from zero.
func (f Format) ToFixed(x float64) (Fixed, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNotFinite
	}
	v := math.Round(x * f.One())
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, ErrOverflow
	}
	return Fixed(v), nil
}

// ToFloat converts n back to a real number.
func (f Format) ToFloat(n Fixed) float64 {
	return float64(n) / f.One()
}
