package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFixed(t *testing.T) {
	tables := []struct {
		in  float64
		out Fixed
	}{
		{0, 0},
		{1, 1 << 15},
		{-1, -1 << 15},
		{0.5, 1 << 14},
		{math.Sin(math.Pi / 4), 23170},
		{1.0 / 65536, 1},
		{-1.0 / 65536, -1},
		{65535, 65535 << 15},
	}

	for _, table := range tables {
		n, err := Default.ToFixed(table.in)
		require.Nil(t, err)
		assert.Equal(t, table.out, n, "%v", table.in)
	}
}

func TestToFixedErrors(t *testing.T) {
	_, err := Default.ToFixed(math.Inf(1))
	assert.Equal(t, ErrNotFinite, err)

	_, err = Default.ToFixed(math.NaN())
	assert.Equal(t, ErrNotFinite, err)

	_, err = Default.ToFixed(65536)
	assert.Equal(t, ErrOverflow, err)

	_, err = Default.ToFixed(-65537)
	assert.Equal(t, ErrOverflow, err)
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.0, Default.ToFloat(1<<15))
	assert.Equal(t, -0.25, Default.ToFloat(-1<<13))
	assert.Equal(t, 2.0, Format{FractBits: 8}.ToFloat(512))
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Default.Validate())
	assert.Nil(t, Format{}.Validate())
	assert.NotNil(t, Format{FractBits: 31}.Validate())
}
