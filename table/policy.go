package table

import "fmt"

// ZeroPolicy decides what to emit for an entry with no finite value, such as
// the reciprocal of zero.
type ZeroPolicy int

const (
	// ZeroMax emits the largest representable value
	ZeroMax ZeroPolicy = iota
	// ZeroZero emits zero
	ZeroZero
	// ZeroError refuses to generate the table
	ZeroError
)

var zeroPolicies = map[string]ZeroPolicy{
	"max":   ZeroMax,
	"zero":  ZeroZero,
	"error": ZeroError,
}

func (p ZeroPolicy) String() string {
	for k, v := range zeroPolicies {
		if v == p {
			return k
		}
	}
	return fmt.Sprintf("ZeroPolicy(%d)", int(p))
}

// ParseZeroPolicy accepts "max", "zero" or "error".
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	if p, ok := zeroPolicies[s]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("table: unknown zero policy %q", s)
}

// Style selects how entries are written.
type Style int

const (
	// StyleExpr writes TO_FIXED(literal) and leaves scaling to the compiler
	StyleExpr Style = iota
	// StyleInt writes the scaled integer
	StyleInt
)

var styles = map[string]Style{
	"expr": StyleExpr,
	"int":  StyleInt,
}

func (s Style) String() string {
	for k, v := range styles {
		if v == s {
			return k
		}
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle accepts "expr" or "int".
func ParseStyle(s string) (Style, error) {
	if v, ok := styles[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("table: unknown style %q", s)
}
