package blockindex

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockreader7000-backend/pkg/safe"
)

// ErrMalformedRecord is returned when an index record cannot be decoded.
var ErrMalformedRecord = errors.New("malformed block index record")

const headerSize = 80

// decodeEntry parses one serialized index record into an Entry. The layout
// is a client-version varint, height, status, and transaction count, then a
// file number iff either data flag is set, a data offset iff HaveData, an
// undo offset iff HaveUndo, and finally the 80-byte header. Trailing bytes
// are tolerated: some node forks append extra per-block metadata after the
// header and the prefix stays compatible.
func decodeEntry(hash chainhash.Hash, value []byte) (*Entry, error) {
	r := bytes.NewReader(value)

	// Client version of the writing node, not meaningful here.
	if _, err := ReadVarInt(r); err != nil {
		return nil, fmt.Errorf("%w: client version: %w", ErrMalformedRecord, err)
	}

	rawHeight, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("%w: height: %w", ErrMalformedRecord, err)
	}
	height, err := safe.Int32(rawHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: height: %w", ErrMalformedRecord, err)
	}

	rawStatus, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("%w: status: %w", ErrMalformedRecord, err)
	}
	status, err := safe.Uint32(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: status: %w", ErrMalformedRecord, err)
	}

	txCount, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("%w: tx count: %w", ErrMalformedRecord, err)
	}

	entry := &Entry{
		Hash:    hash,
		Height:  height,
		Status:  Status(status),
		TxCount: txCount,
	}

	var file int32
	if entry.Status.HasData() || entry.Status.HasUndo() {
		rawFile, err := ReadVarInt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: file number: %w", ErrMalformedRecord, err)
		}
		if file, err = safe.Int32(rawFile); err != nil {
			return nil, fmt.Errorf("%w: file number: %w", ErrMalformedRecord, err)
		}
	}

	if entry.Status.HasData() {
		offset, err := readOffset(r, "data offset")
		if err != nil {
			return nil, err
		}
		entry.DataPos = &FilePos{File: file, Offset: offset}
	}

	if entry.Status.HasUndo() {
		offset, err := readOffset(r, "undo offset")
		if err != nil {
			return nil, err
		}
		entry.UndoPos = &FilePos{File: file, Offset: offset}
	}

	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedRecord, err)
	}
	if err := entry.Header.Deserialize(bytes.NewReader(header[:])); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedRecord, err)
	}

	return entry, nil
}

func readOffset(r *bytes.Reader, field string) (uint32, error) {
	v, err := ReadVarInt(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, field, err)
	}
	offset, err := safe.Uint32(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, field, err)
	}
	return offset, nil
}
