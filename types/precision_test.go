package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTable(t *testing.T) {
	single, ok := Single.Layout()
	require.True(t, ok)
	assert.Equal(t, 8, single.ExponentBits)
	assert.Equal(t, 23, single.MantissaBits)
	assert.Equal(t, 127, single.Bias)
	assert.Equal(t, 32, single.Bits())
	assert.Equal(t, 4, single.Bytes())

	double, ok := Double.Layout()
	require.True(t, ok)
	assert.Equal(t, 11, double.ExponentBits)
	assert.Equal(t, 52, double.MantissaBits)
	assert.Equal(t, 1023, double.Bias)
	assert.Equal(t, 64, double.Bits())
	assert.Equal(t, 8, double.Bytes())
}

func TestPrecisionWidths(t *testing.T) {
	for _, p := range Precisions() {
		l, ok := p.Layout()
		require.True(t, ok)
		assert.Equal(t, p.Bits(), l.Bits())
		assert.Equal(t, p.Bytes(), l.Bytes())
		assert.True(t, p.Valid())
	}
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "double", Double.String())
}

func TestSplitSingle(t *testing.T) {
	l, _ := Single.Layout()
	// 12.25 = 0 10000010 10001000000000000000000
	f := l.Split(uint64(math.Float32bits(12.25)))
	assert.Equal(t, uint64(0), f.Sign)
	assert.Equal(t, uint64(0b10000010), f.Exponent)
	assert.Equal(t, uint64(0b10001000000000000000000), f.Mantissa)
	assert.Equal(t, 3, l.Unbias(f.Exponent))
	assert.Equal(t, uint64(math.Float32bits(12.25)), l.Join(f))
}

func TestSplitDouble(t *testing.T) {
	l, _ := Double.Layout()
	raw := math.Float64bits(-1.5)
	f := l.Split(raw)
	assert.Equal(t, uint64(1), f.Sign)
	assert.Equal(t, uint64(1023), f.Exponent)
	assert.Equal(t, uint64(1)<<51, f.Mantissa)
	assert.Equal(t, 0, l.Unbias(f.Exponent))
	assert.Equal(t, raw, l.Join(f))
}

func TestSpecialExponents(t *testing.T) {
	l, _ := Double.Layout()
	inf := l.Split(math.Float64bits(math.Inf(-1)))
	assert.Equal(t, l.MaxExponent(), inf.Exponent)
	assert.Equal(t, uint64(0), inf.Mantissa)

	sub := l.Split(1)
	assert.Equal(t, uint64(0), sub.Exponent)
	assert.Equal(t, -1022, l.Unbias(sub.Exponent))
}

func TestFits(t *testing.T) {
	l, _ := Single.Layout()
	assert.True(t, l.Fits(Fields{Sign: 1, Exponent: 0xff, Mantissa: 0x7fffff}))
	assert.False(t, l.Fits(Fields{Sign: 2}))
	assert.False(t, l.Fits(Fields{Exponent: 0x100}))
	assert.False(t, l.Fits(Fields{Mantissa: 0x800000}))
}

// NEGATIVE TESTS
func TestUnsupportedPrecision(t *testing.T) {
	for _, p := range []Precision{0, 16, 80, 128, -32} {
		_, ok := p.Layout()
		assert.False(t, ok)
		assert.False(t, p.Valid())
	}
	assert.Equal(t, "Precision(16)", Precision(16).String())
}
