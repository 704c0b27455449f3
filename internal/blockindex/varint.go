package blockindex

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrVarIntOverflow is returned when a serialized varint does not fit in 64
// bits.
var ErrVarIntOverflow = errors.New("varint overflows uint64")

// AppendVarInt appends the canonical encoding of n to buf and returns the
// extended slice.
func AppendVarInt(buf []byte, n uint64) []byte {
	// Groups are produced least significant first and emitted reversed.
	var groups [10]byte
	i := 0
	for {
		b := byte(n & 0x7f)
		if i > 0 {
			b |= 0x80
		}
		groups[i] = b
		if n <= 0x7f {
			break
		}
		n = n>>7 - 1
		i++
	}
	for ; i >= 0; i-- {
		buf = append(buf, groups[i])
	}
	return buf
}

// ReadVarInt decodes the variable-length integer encoding Bitcoin Core uses
// for index records and undo data (distinct from the wire CompactSize
// encoding): MSB-first groups of seven bits, every byte but the last carries
// the continuation bit, and each group after the first is offset by one so
// that every value has exactly one encoding.
func ReadVarInt(r io.ByteReader) (uint64, error) {
	var n uint64
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, fmt.Errorf("read varint: %w", err)
		}

		if n > math.MaxUint64>>7 {
			return 0, ErrVarIntOverflow
		}
		n = n<<7 | uint64(b&0x7f)

		if b&0x80 == 0 {
			return n, nil
		}
		if n == math.MaxUint64 {
			return 0, ErrVarIntOverflow
		}
		n++
	}
}
