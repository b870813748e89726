package floatbin

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/filecoin-project/go-floatbits/byteconv"
	"github.com/filecoin-project/go-floatbits/parsing"
	"github.com/filecoin-project/go-floatbits/types"
	"github.com/filecoin-project/go-floatbits/util"
	"golang.org/x/xerrors"
)

// Bits is the raw bit pattern of a floating-point value at a given precision.
// Raw holds the pattern right-aligned, bits above Precision.Bits() are always zero.
type Bits struct {
	Precision types.Precision
	Raw       uint64
}

// Class is the IEEE-754 category of a bit pattern
type Class int

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// FromFields assembles a bit pattern from its sign, biased exponent and mantissa
func FromFields(p types.Precision, f types.Fields) (Bits, error) {
	l, err := layoutOf(p)
	if err != nil {
		return Bits{}, err
	}
	if !l.Fits(f) {
		return Bits{}, fieldError(fmt.Sprintf("fields %+v do not fit the %d/%d/%d layout of %s precision",
			f, types.SignBits, l.ExponentBits, l.MantissaBits, p))
	}
	return Bits{Precision: p, Raw: l.Join(f)}, nil
}

func (b Bits) layout() types.FieldLayout {
	l, err := layoutOf(b.Precision)
	if err != nil {
		panic("floatbin: " + err.Error())
	}
	return l
}

// Validate checks that the precision is supported and that Raw fits into it
func (b Bits) Validate() error {
	l, err := layoutOf(b.Precision)
	if err != nil {
		return err
	}
	if !util.Fits(b.Raw, l.Bits()) {
		return bitStringError(fmt.Sprintf("raw value %#x does not fit %d bits", b.Raw, l.Bits()))
	}
	return nil
}

// String returns the bit string of b, exactly Precision.Bits() characters long.
// Panics if the precision is unsupported.
func (b Bits) String() string {
	return parsing.FormatBits(b.Raw, b.layout().Bits())
}

// Fields splits b into sign, biased exponent and mantissa
func (b Bits) Fields() types.Fields {
	return b.layout().Split(b.Raw)
}

// Grouped renders b with its fields separated by spaces
func (b Bits) Grouped() string {
	return parsing.FormatFields(b.Raw, b.layout())
}

// Negative reports whether the sign bit is set
func (b Bits) Negative() bool {
	return b.Fields().Sign == 1
}

// Exponent returns the unbiased exponent. It is meaningless for infinities and NaNs.
func (b Bits) Exponent() int {
	return b.layout().Unbias(b.Fields().Exponent)
}

func (b Bits) Class() Class {
	l := b.layout()
	f := l.Split(b.Raw)
	switch {
	case f.Exponent == l.MaxExponent() && f.Mantissa == 0:
		return Infinite
	case f.Exponent == l.MaxExponent():
		return NaN
	case f.Exponent == 0 && f.Mantissa == 0:
		return Zero
	case f.Exponent == 0:
		return Subnormal
	}
	return Normal
}

// Float64 reinterprets the bit pattern as a float of the matching width, widened to float64.
// Widening a single precision signaling NaN may set its quiet bit, use Raw to keep the exact pattern.
func (b Bits) Float64() float64 {
	buf := byteconv.IntToBytes(b.Raw, b.layout().Bytes())
	if b.Precision == types.Single {
		return float64(math.Float32frombits(binary.BigEndian.Uint32(buf)))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}

// Float32 reinterprets a single precision bit pattern, double precision patterns are narrowed
func (b Bits) Float32() float32 {
	if b.Precision == types.Single {
		return math.Float32frombits(uint32(b.Raw))
	}
	return float32(b.Float64())
}

var _ encoding.BinaryMarshaler = Bits{}
var _ encoding.BinaryUnmarshaler = (*Bits)(nil)
var _ encoding.TextMarshaler = Bits{}
var _ encoding.TextUnmarshaler = (*Bits)(nil)

// MarshalBinary encodes b as one byte holding the precision followed by the big-endian raw bytes
func (b Bits) MarshalBinary() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, xerrors.Errorf("marshaling bits: %w", err)
	}
	res := make([]byte, 1, 1+b.Precision.Bytes())
	res[0] = byte(b.Precision)
	return append(res, byteconv.IntToBytes(b.Raw, b.Precision.Bytes())...), nil
}

func (b *Bits) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return xerrors.Errorf("no bits encoded")
	}
	p := types.Precision(data[0])
	l, err := layoutOf(p)
	if err != nil {
		return xerrors.Errorf("unmarshaling bits: %w", err)
	}
	if len(data)-1 != l.Bytes() {
		return xerrors.Errorf("invalid encoded size for %s precision: expected %d, got %d", p, 1+l.Bytes(), len(data))
	}
	raw, err := byteconv.BytesToInt(data[1:])
	if err != nil {
		return xerrors.Errorf("reading raw bytes: %w", err)
	}
	*b = Bits{Precision: p, Raw: raw}
	return nil
}

// MarshalText encodes b as "<width>:<bit string>", e.g. "32:0100...0"
func (b Bits) MarshalText() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, xerrors.Errorf("marshaling bits: %w", err)
	}
	return []byte(strconv.Itoa(b.Precision.Bits()) + ":" + b.String()), nil
}

func (b *Bits) UnmarshalText(text []byte) error {
	width, bits, ok := strings.Cut(string(text), ":")
	if !ok {
		return bitStringError(fmt.Sprintf("invalid bit string: missing precision prefix in %q", text))
	}
	p, err := ParsePrecision(width)
	if err != nil {
		return err
	}
	res, err := DecodeBits(bits, p)
	if err != nil {
		return err
	}
	*b = res
	return nil
}
