package parsing

import (
	"fmt"
	"strings"

	"github.com/filecoin-project/go-floatbits/types"
	"golang.org/x/xerrors"
)

// MaxWidth is the widest bit string that fits a uint64
const MaxWidth = 64

// FormatBits renders the lowest width bits of raw in base 2, most significant bit first.
// The result is always exactly width characters long, left-padded with '0'.
// Panics if width is not within [0, MaxWidth].
func FormatBits(raw uint64, width int) string {
	if width < 0 || width > MaxWidth {
		panic(fmt.Sprintf("parsing: width %d out of range [0, %d]", width, MaxWidth))
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = '0' + byte(raw&1)
		raw >>= 1
	}
	return string(buf)
}

// ParseBits reads a base 2 string of exactly width characters.
// Any character other than '0' or '1' and any other length is rejected, no padding or truncation takes place.
func ParseBits(s string, width int) (uint64, error) {
	if width < 1 || width > MaxWidth {
		return 0, xerrors.Errorf("width %d out of range [1, %d]", width, MaxWidth)
	}
	if len(s) != width {
		return 0, xerrors.Errorf("bit string has length %d, expected %d", len(s), width)
	}
	var raw uint64
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			raw <<= 1
		case '1':
			raw = raw<<1 | 1
		default:
			return 0, xerrors.Errorf("invalid character %q at position %d", s[i], i)
		}
	}
	return raw, nil
}

// FormatFields renders raw as sign, exponent and mantissa separated by a single space,
// e.g. "0 10000010 10001000000000000000000" for 12.25 in single precision
func FormatFields(raw uint64, layout types.FieldLayout) string {
	s := FormatBits(raw, layout.Bits())
	expEnd := types.SignBits + layout.ExponentBits
	return s[:types.SignBits] + " " + s[types.SignBits:expEnd] + " " + s[expEnd:]
}

// Compact removes the grouping separators (spaces and underscores) people use
// when writing bit strings by hand, so "0 10000010 1000..." can be handed to ParseBits
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' {
			return -1
		}
		return r
	}, s)
}
