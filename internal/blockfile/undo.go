package blockfile

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/pkg/safe"
)

// SpentOutput is one transaction output consumed by a block, as recorded in
// the block's undo data.
type SpentOutput struct {
	// Amount in satoshis.
	Amount int64
	// Height of the block that created the output.
	Height int32
	// Coinbase marks outputs created by a coinbase transaction.
	Coinbase bool
	// PkScript is the locking script, decompressed to its canonical form.
	PkScript []byte
}

// UndoData records everything a block spent. Spent[i] holds the previous
// outputs consumed by transaction i+1 of the block, in input order; the
// coinbase transaction spends nothing and has no slot.
type UndoData struct {
	Spent [][]SpentOutput
}

// SpendCount returns the total number of outputs the block spent.
func (u *UndoData) SpendCount() int {
	var n int
	for _, spends := range u.Spent {
		n += len(spends)
	}
	return n
}

// decodeUndo parses an undo record payload. The outer counts use the wire
// compact-size encoding; per-output fields use the index varint encoding.
func decodeUndo(payload []byte) (*UndoData, error) {
	r := bytes.NewReader(payload)

	txCount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: undo tx count: %v", ErrDecode, err)
	}
	// Every entry needs at least one byte, which bounds allocations on a
	// corrupt count before they happen.
	if txCount > uint64(r.Len()) {
		return nil, fmt.Errorf("%w: undo tx count %d exceeds record size", ErrDecode, txCount)
	}

	undo := &UndoData{Spent: make([][]SpentOutput, txCount)}
	for i := range undo.Spent {
		spendCount, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: tx %d spend count: %v", ErrDecode, i+1, err)
		}
		if spendCount > uint64(r.Len()) {
			return nil, fmt.Errorf("%w: tx %d spend count %d exceeds record size",
				ErrDecode, i+1, spendCount)
		}

		spends := make([]SpentOutput, spendCount)
		for j := range spends {
			if spends[j], err = decodeSpentOutput(r); err != nil {
				return nil, fmt.Errorf("tx %d input %d: %w", i+1, j, err)
			}
		}
		undo.Spent[i] = spends
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after undo record", ErrDecode, r.Len())
	}
	return undo, nil
}

func decodeSpentOutput(r *bytes.Reader) (SpentOutput, error) {
	// The code packs the creating block's height with the coinbase flag
	// in the low bit.
	code, err := blockindex.ReadVarInt(r)
	if err != nil {
		return SpentOutput{}, fmt.Errorf("%w: spend code: %v", ErrDecode, err)
	}
	height, err := safe.Int32(code >> 1)
	if err != nil {
		return SpentOutput{}, fmt.Errorf("%w: spend height: %v", ErrDecode, err)
	}
	out := SpentOutput{Height: height, Coinbase: code&1 == 1}

	if height > 0 {
		// Dummy version field the serialization keeps for compatibility
		// with its older per-transaction format.
		if _, err := blockindex.ReadVarInt(r); err != nil {
			return SpentOutput{}, fmt.Errorf("%w: spend version: %v", ErrDecode, err)
		}
	}

	compressed, err := blockindex.ReadVarInt(r)
	if err != nil {
		return SpentOutput{}, fmt.Errorf("%w: spend amount: %v", ErrDecode, err)
	}
	if out.Amount, err = safe.Int64(decompressAmount(compressed)); err != nil {
		return SpentOutput{}, fmt.Errorf("%w: spend amount: %v", ErrDecode, err)
	}

	if out.PkScript, err = readCompressedScript(r); err != nil {
		return SpentOutput{}, err
	}
	return out, nil
}
