// Package floatbin converts IEEE-754 binary floating-point values to and from
// their raw bit pattern written as a string of '0' and '1' characters.
package floatbin

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/filecoin-project/go-floatbits/parsing"
	"github.com/filecoin-project/go-floatbits/types"
	"golang.org/x/exp/constraints"
)

func layoutOf(p types.Precision) (types.FieldLayout, error) {
	l, ok := p.Layout()
	if !ok {
		return types.FieldLayout{}, precisionError(fmt.Sprintf("unsupported precision %d, expected %d or %d",
			int(p), types.Single, types.Double))
	}
	return l, nil
}

// ParsePrecision accepts a width ("32", "64") or a name ("single", "double", "float32", "float64")
func ParsePrecision(s string) (types.Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "32", "single", "float32", "f32":
		return types.Single, nil
	case "64", "double", "float64", "f64":
		return types.Double, nil
	}
	return 0, precisionError(fmt.Sprintf("unsupported precision %q, expected 32 or 64", s))
}

// Encode returns the bit pattern of value at precision p as a string of exactly p.Bits() characters.
// Encoding at single precision narrows value to float32 first, which can round silently.
func Encode(value float64, p types.Precision) (string, error) {
	b, err := EncodeBits(value, p)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// EncodeBits is like Encode but returns the raw bit pattern
func EncodeBits(value float64, p types.Precision) (Bits, error) {
	if _, err := layoutOf(p); err != nil {
		return Bits{}, err
	}
	var raw uint64
	if p == types.Single {
		raw = uint64(math.Float32bits(float32(value)))
	} else {
		raw = math.Float64bits(value)
	}
	return Bits{Precision: p, Raw: raw}, nil
}

// EncodeFloat32 returns the 32 character bit string of v
func EncodeFloat32(v float32) string {
	return parsing.FormatBits(uint64(math.Float32bits(v)), types.Single.Bits())
}

// EncodeFloat64 returns the 64 character bit string of v
func EncodeFloat64(v float64) string {
	return parsing.FormatBits(math.Float64bits(v), types.Double.Bits())
}

// PrecisionOf returns the precision matching the size of T
func PrecisionOf[T constraints.Float]() types.Precision {
	var v T
	return types.Precision(unsafe.Sizeof(v) * 8)
}

// EncodeOf encodes v at the precision of its Go type, without any narrowing
func EncodeOf[T constraints.Float](v T) string {
	if PrecisionOf[T]() == types.Single {
		return EncodeFloat32(float32(v))
	}
	return EncodeFloat64(float64(v))
}

// Decode parses a bit string of exactly p.Bits() characters and returns the value with that bit pattern.
// Single precision results are widened to float64 exactly.
func Decode(bits string, p types.Precision) (float64, error) {
	b, err := DecodeBits(bits, p)
	if err != nil {
		return 0, err
	}
	return b.Float64(), nil
}

// DecodeBits is like Decode but returns the raw bit pattern, which preserves NaN payloads exactly
func DecodeBits(bits string, p types.Precision) (Bits, error) {
	if _, err := layoutOf(p); err != nil {
		return Bits{}, err
	}
	raw, err := parsing.ParseBits(bits, p.Bits())
	if err != nil {
		return Bits{}, invalidBitString(err)
	}
	return Bits{Precision: p, Raw: raw}, nil
}
