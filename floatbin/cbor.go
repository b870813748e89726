package floatbin

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-floatbits/byteconv"
	"github.com/filecoin-project/go-floatbits/types"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// Bits encodes as [uint64 width, bytes raw] with raw in big-endian order and
// exactly width/8 bytes long

var _ cbg.CBORUnmarshaler = (*Bits)(nil)
var _ cbg.CBORMarshaler = (*Bits)(nil)

var lengthBufBits = []byte{130}

func (b *Bits) MarshalCBOR(w io.Writer) error {
	if b == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if err := b.Validate(); err != nil {
		return xerrors.Errorf("marshaling bits: %w", err)
	}

	cw := cbg.NewCborWriter(w)

	if _, err := cw.Write(lengthBufBits); err != nil {
		return err
	}

	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(b.Precision)); err != nil {
		return err
	}

	return cbg.WriteByteArray(cw, byteconv.IntToBytes(b.Raw, b.Precision.Bytes()))
}

func (b *Bits) UnmarshalCBOR(r io.Reader) (err error) {
	*b = Bits{}

	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("wrong type for precision field")
	}
	if extra > uint64(types.Double) {
		return precisionError(fmt.Sprintf("unsupported precision %d", extra))
	}
	p := types.Precision(extra)
	l, err := layoutOf(p)
	if err != nil {
		return err
	}

	rb, err := cbg.ReadByteArray(cr, uint64(l.Bytes()))
	if err != nil {
		return xerrors.Errorf("reading cbor bytearray: %w", err)
	}
	if len(rb) != l.Bytes() {
		return xerrors.Errorf("too few bytes for %s precision: %d", p, len(rb))
	}

	raw, err := byteconv.BytesToInt(rb)
	if err != nil {
		return xerrors.Errorf("reading raw bytes: %w", err)
	}

	b.Precision = p
	b.Raw = raw
	return nil
}
