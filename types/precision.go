package types

import (
	"fmt"

	"github.com/filecoin-project/go-floatbits/util"
)

// SignBits is the width of the sign field, identical for all supported layouts
const SignBits = 1

// Precision selects one of the supported IEEE-754 binary interchange formats.
// The numeric value of a Precision is its width in bits.
type Precision int

const (
	Single Precision = 32
	Double Precision = 64
)

// FieldLayout describes how a raw bit pattern is split into sign, biased exponent and mantissa
type FieldLayout struct {
	ExponentBits int
	MantissaBits int
	// Bias is subtracted from the stored exponent to recover the signed exponent
	Bias int
}

func newLayout(exponentBits, mantissaBits int) FieldLayout {
	return FieldLayout{
		ExponentBits: exponentBits,
		MantissaBits: mantissaBits,
		Bias:         util.Bias(exponentBits),
	}
}

var layouts = map[Precision]FieldLayout{
	Single: newLayout(8, 23),
	Double: newLayout(11, 52),
}

// Precisions returns the supported precisions ordered by width
func Precisions() []Precision {
	return []Precision{Single, Double}
}

// Valid reports whether p is one of the supported precisions
func (p Precision) Valid() bool {
	_, ok := layouts[p]
	return ok
}

// Layout returns the field layout of p. The second return value is false for unsupported precisions.
func (p Precision) Layout() (FieldLayout, bool) {
	l, ok := layouts[p]
	return l, ok
}

// Bits returns the total width in bits
func (p Precision) Bits() int {
	return int(p)
}

// Bytes returns the width in whole bytes
func (p Precision) Bytes() int {
	return util.Ceil(int(p), 8)
}

func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Bits is the total width of the layout, sign included
func (l FieldLayout) Bits() int {
	return SignBits + l.ExponentBits + l.MantissaBits
}

// Bytes is the width of the layout in whole bytes
func (l FieldLayout) Bytes() int {
	return util.Ceil(l.Bits(), 8)
}

// SignShift is the position of the sign bit counted from the least significant bit
func (l FieldLayout) SignShift() uint {
	return uint(l.ExponentBits + l.MantissaBits)
}

// ExponentShift is the position of the lowest exponent bit
func (l FieldLayout) ExponentShift() uint {
	return uint(l.MantissaBits)
}

func (l FieldLayout) ExponentMask() uint64 {
	return util.Mask(l.ExponentBits)
}

func (l FieldLayout) MantissaMask() uint64 {
	return util.Mask(l.MantissaBits)
}

// MaxExponent is the reserved all-ones biased exponent used by infinities and NaNs
func (l FieldLayout) MaxExponent() uint64 {
	return l.ExponentMask()
}

// Fields holds the three fields of a raw bit pattern, each right-aligned
type Fields struct {
	Sign     uint64
	Exponent uint64
	Mantissa uint64
}

// Split decomposes raw into its fields. Bits above the layout width are ignored.
func (l FieldLayout) Split(raw uint64) Fields {
	return Fields{
		Sign:     (raw >> l.SignShift()) & util.Mask(SignBits),
		Exponent: (raw >> l.ExponentShift()) & l.ExponentMask(),
		Mantissa: raw & l.MantissaMask(),
	}
}

// Fits reports whether every field of f can be stored in its width
func (l FieldLayout) Fits(f Fields) bool {
	return util.Fits(f.Sign, SignBits) &&
		util.Fits(f.Exponent, l.ExponentBits) &&
		util.Fits(f.Mantissa, l.MantissaBits)
}

// Join is the inverse of Split. Fields are truncated to their widths, use Fits to check beforehand.
func (l FieldLayout) Join(f Fields) uint64 {
	return (f.Sign&util.Mask(SignBits))<<l.SignShift() |
		(f.Exponent&l.ExponentMask())<<l.ExponentShift() |
		f.Mantissa&l.MantissaMask()
}

// Unbias returns the signed exponent for a stored exponent.
// A stored exponent of zero denotes a subnormal, whose exponent is 1 - Bias.
func (l FieldLayout) Unbias(exponent uint64) int {
	if exponent == 0 {
		return 1 - l.Bias
	}
	return int(exponent) - l.Bias
}
