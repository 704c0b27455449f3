package blockfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

// specialScriptKinds is the number of script template encodings; a stored
// size below it selects a template, anything else is size-6 raw bytes.
const specialScriptKinds = 6

// maxScriptSize mirrors the writer's script length cap. A raw size beyond
// it decodes to an unspendable placeholder, matching the writer's own
// reader, rather than failing the whole record.
const maxScriptSize = 10000

// decompressAmount inverts the writer's amount compression. The encoding
// splits an amount into a power of ten and the remaining digits; zero maps
// to zero.
func decompressAmount(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	x--
	e := x % 10
	x /= 10
	var n uint64
	if e < 9 {
		d := x%9 + 1
		x /= 9
		n = x*10 + d
	} else {
		n = x + 1
	}
	for ; e > 0; e-- {
		n *= 10
	}
	return n
}

// readCompressedScript reads one compressed locking script and expands it
// to canonical script bytes.
func readCompressedScript(r *bytes.Reader) ([]byte, error) {
	kind, err := blockindex.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("%w: script size: %v", ErrDecode, err)
	}

	switch kind {
	case 0: // pay-to-pubkey-hash
		var hash [20]byte
		if _, err := io.ReadFull(r, hash[:]); err != nil {
			return nil, fmt.Errorf("%w: script payload: %v", ErrDecode, err)
		}
		script := make([]byte, 0, 25)
		script = append(script, txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20)
		script = append(script, hash[:]...)
		return append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG), nil

	case 1: // pay-to-script-hash
		var hash [20]byte
		if _, err := io.ReadFull(r, hash[:]); err != nil {
			return nil, fmt.Errorf("%w: script payload: %v", ErrDecode, err)
		}
		script := make([]byte, 0, 23)
		script = append(script, txscript.OP_HASH160, txscript.OP_DATA_20)
		script = append(script, hash[:]...)
		return append(script, txscript.OP_EQUAL), nil

	case 2, 3: // pay-to-pubkey, compressed key stored as parity + x
		var x [32]byte
		if _, err := io.ReadFull(r, x[:]); err != nil {
			return nil, fmt.Errorf("%w: script payload: %v", ErrDecode, err)
		}
		script := make([]byte, 0, 35)
		script = append(script, txscript.OP_DATA_33, byte(kind))
		script = append(script, x[:]...)
		return append(script, txscript.OP_CHECKSIG), nil

	case 4, 5: // pay-to-pubkey, uncompressed key recovered from parity + x
		var x [32]byte
		if _, err := io.ReadFull(r, x[:]); err != nil {
			return nil, fmt.Errorf("%w: script payload: %v", ErrDecode, err)
		}
		compressed := make([]byte, 0, 33)
		compressed = append(compressed, byte(kind-2))
		compressed = append(compressed, x[:]...)
		pub, err := btcec.ParsePubKey(compressed)
		if err != nil {
			return nil, fmt.Errorf("%w: pubkey recovery: %v", ErrDecode, err)
		}
		script := make([]byte, 0, 67)
		script = append(script, txscript.OP_DATA_65)
		script = append(script, pub.SerializeUncompressed()...)
		return append(script, txscript.OP_CHECKSIG), nil

	default:
		size := kind - specialScriptKinds
		if size > maxScriptSize {
			if size > uint64(r.Len()) {
				return nil, fmt.Errorf("%w: script size %d exceeds record", ErrDecode, size)
			}
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("%w: script skip: %v", ErrDecode, err)
			}
			return []byte{txscript.OP_RETURN}, nil
		}
		script := make([]byte, size)
		if _, err := io.ReadFull(r, script); err != nil {
			return nil, fmt.Errorf("%w: script payload: %v", ErrDecode, err)
		}
		return script, nil
	}
}
