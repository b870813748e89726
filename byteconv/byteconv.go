package byteconv

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/xerrors"
)

// MaxBytes is the longest byte sequence that still fits a uint64
const MaxBytes = 8

// IntToBytes returns exactly length bytes holding n in big-endian order.
// Higher-order bytes of n that do not fit into length bytes are dropped.
// Panics if length is not within [1, MaxBytes].
func IntToBytes(n uint64, length int) []byte {
	if length < 1 || length > MaxBytes {
		panic(fmt.Sprintf("byteconv: length %d out of range [1, %d]", length, MaxBytes))
	}
	var buf [MaxBytes]byte
	binary.BigEndian.PutUint64(buf[:], n)
	res := make([]byte, length)
	copy(res, buf[MaxBytes-length:])
	return res
}

// BytesToInt reads a big-endian byte sequence of 1 to MaxBytes bytes
func BytesToInt(b []byte) (uint64, error) {
	if len(b) == 0 || len(b) > MaxBytes {
		return 0, xerrors.Errorf("cannot read %d bytes into a uint64", len(b))
	}
	var buf [MaxBytes]byte
	copy(buf[MaxBytes-len(b):], b)
	return binary.BigEndian.Uint64(buf[:]), nil
}
