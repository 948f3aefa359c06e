package table

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/bodgit/fixedgen/cgen"
	"github.com/bodgit/fixedgen/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReciprocal(t *testing.T) {
	entries := Reciprocal(fixed.Default)
	require.Len(t, entries, 1<<15)

	assert.True(t, math.IsInf(entries[0].Value, 1))
	assert.Equal(t, "1.0/0.0", entries[0].Literal)
	assert.Equal(t, "1.0/3.0517578125e-05", entries[1].Literal)
	assert.Equal(t, "1.0/0.5", entries[1<<14].Literal)
	assert.Equal(t, 2.0, entries[1<<14].Value)

	values, err := Fixed(entries, fixed.Default, ZeroMax)
	require.Nil(t, err)
	assert.Equal(t, fixed.Max, values[0])
	for i := 1; i < len(values); i++ {
		assert.InDelta(t, math.Round(float64(1<<30)/float64(i)), float64(values[i]), 1, "index %d", i)
	}
}

func TestSine(t *testing.T) {
	entries, err := Sine(SinePeriod)
	require.Nil(t, err)
	require.Len(t, entries, 16385)

	values, err := Fixed(entries, fixed.Default, ZeroError)
	require.Nil(t, err)

	assert.Equal(t, fixed.Fixed(0), values[0])
	assert.Equal(t, fixed.Fixed(1<<15), values[16384])
	assert.InDelta(t, 0.7071*(1<<15), float64(values[8192]), 2)

	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("sine table decreases at index %d", i)
		}
	}

	for _, e := range entries {
		v, err := strconv.ParseFloat(e.Literal, 64)
		require.Nil(t, err)
		assert.Equal(t, e.Value, v)
	}
	assert.Equal(t, "0.0", entries[0].Literal)
	assert.Equal(t, "1.0", entries[16384].Literal)
}

func TestSineBadPeriod(t *testing.T) {
	for _, p := range []int{0, -4, 6, 65535} {
		_, err := Sine(p)
		assert.Equal(t, errBadPeriod, err, "period %d", p)
	}
}

func TestFixedPolicy(t *testing.T) {
	entries := Reciprocal(fixed.Format{FractBits: 2})

	values, err := Fixed(entries, fixed.Format{FractBits: 2}, ZeroZero)
	require.Nil(t, err)
	assert.Equal(t, []fixed.Fixed{0, 16, 8, 5}, values)

	_, err = Fixed(entries, fixed.Format{FractBits: 2}, ZeroError)
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestWrite(t *testing.T) {
	f := fixed.Format{FractBits: 2}

	tables := []struct {
		style Style
		zero  ZeroPolicy
		out   string
	}{
		{
			StyleExpr,
			ZeroMax,
			`#include "assert.h"
#include "fixedpoint.h"
static_assert(FRACT_BITS == 2);
const fixed_t recipTable[] = {
FIXED_MAX,
TO_FIXED(1.0/0.25),
TO_FIXED(1.0/0.5),
TO_FIXED(1.0/0.75),
};
`,
		},
		{
			StyleInt,
			ZeroMax,
			`#include "assert.h"
#include "fixedpoint.h"
static_assert(FRACT_BITS == 2);
const fixed_t recipTable[] = {
2147483647,
16,
8,
5,
};
`,
		},
		{
			StyleExpr,
			ZeroZero,
			`#include "assert.h"
#include "fixedpoint.h"
static_assert(FRACT_BITS == 2);
const fixed_t recipTable[] = {
0,
TO_FIXED(1.0/0.25),
TO_FIXED(1.0/0.5),
TO_FIXED(1.0/0.75),
};
`,
		},
	}

	for _, table := range tables {
		b := new(bytes.Buffer)
		w := cgen.NewWriter(b)
		err := Write(w, Decl{
			Name:     "recipTable",
			Type:     "fixed_t",
			Includes: []string{"assert.h", "fixedpoint.h"},
			Assert:   "FRACT_BITS == 2",
			Style:    table.style,
			Zero:     table.zero,
			Format:   f,
		}, Reciprocal(f))
		require.Nil(t, err)
		require.Nil(t, w.Flush())
		assert.Equal(t, table.out, b.String(), "%s/%s", table.style, table.zero)
	}
}

func TestWriteUndefined(t *testing.T) {
	f := fixed.Format{FractBits: 2}

	for _, style := range []Style{StyleExpr, StyleInt} {
		b := new(bytes.Buffer)
		w := cgen.NewWriter(b)
		err := Write(w, Decl{
			Name:   "recipTable",
			Type:   "fixed_t",
			Style:  style,
			Zero:   ZeroError,
			Format: f,
		}, Reciprocal(f))
		assert.True(t, errors.Is(err, ErrUndefined))
		require.Nil(t, w.Flush())
		assert.Equal(t, 0, b.Len())
	}
}

func TestParse(t *testing.T) {
	p, err := ParseZeroPolicy("error")
	require.Nil(t, err)
	assert.Equal(t, ZeroError, p)
	assert.Equal(t, "error", p.String())

	_, err = ParseZeroPolicy("sentinel")
	assert.NotNil(t, err)

	s, err := ParseStyle("int")
	require.Nil(t, err)
	assert.Equal(t, StyleInt, s)
	assert.Equal(t, "int", s.String())

	_, err = ParseStyle("float")
	assert.NotNil(t, err)
}
