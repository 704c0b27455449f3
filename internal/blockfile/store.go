// Package blockfile reads block and undo records from the append-only
// blk/rev files a node writes under its blocks directory. Reads are
// independent of each other: every call opens the file, reads one record,
// and closes the file again, so the store never holds handles across calls
// and never interferes with the node appending to the same files.
package blockfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

// Failure classes for record reads. Errors returned by the store wrap
// exactly one of these.
var (
	// ErrNotAvailable: the index entry carries no location for the
	// requested record.
	ErrNotAvailable = errors.New("record not on disk")
	// ErrTruncated: the file ends before the record does.
	ErrTruncated = errors.New("record truncated")
	// ErrDecode: the record bytes are malformed or fail integrity checks.
	ErrDecode = errors.New("record decode failed")
	// ErrIO: the file could not be opened or read.
	ErrIO = errors.New("block file io")
)

// preambleSize is the magic-plus-length prefix written before every record.
// Index entries store the offset of the record payload, so the preamble
// lives at offset-8.
const preambleSize = 8

// maxRecordSize caps the length field of a record before any allocation
// happens. Matches the serialization limit of the writing node.
const maxRecordSize = 0x02000000 // 32 MiB

// Store performs random-access reads of block and undo records.
type Store struct {
	dir string
	net wire.BitcoinNet
}

// NewStore returns a Store over the blocks directory beneath dataDir.
// Records whose stored network magic differs from net are rejected.
func NewStore(dataDir string, net wire.BitcoinNet) *Store {
	return &Store{
		dir: filepath.Join(dataDir, "blocks"),
		net: net,
	}
}

func blockFileName(file int32) string { return fmt.Sprintf("blk%05d.dat", file) }
func undoFileName(file int32) string  { return fmt.Sprintf("rev%05d.dat", file) }

// ReadBlock reads and decodes the full block for entry. The decoded block's
// hash must match the entry, guarding against an index that points into the
// middle of a rewritten file.
func (s *Store) ReadBlock(entry *blockindex.Entry) (*wire.MsgBlock, error) {
	if entry.DataPos == nil {
		return nil, fmt.Errorf("%w: block %s", ErrNotAvailable, entry.Hash)
	}

	payload, _, err := s.readRecord(blockFileName(entry.DataPos.File), entry.DataPos.Offset, 0)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", entry.Hash, err)
	}

	block := &wire.MsgBlock{}
	if err := block.Deserialize(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: block %s: %v", ErrDecode, entry.Hash, err)
	}

	if got := block.BlockHash(); got != entry.Hash {
		return nil, fmt.Errorf("%w: block at %s offset %d hashes to %s, want %s",
			ErrDecode, blockFileName(entry.DataPos.File), entry.DataPos.Offset, got, entry.Hash)
	}
	return block, nil
}

// ReadUndo reads and decodes the undo record for entry. For the genesis
// entry it returns (nil, nil): a block with no spendable predecessors has no
// undo data by definition, and that absence is not an error. The record's
// trailing checksum, a double-SHA256 over the parent hash and the payload,
// is verified before decoding.
func (s *Store) ReadUndo(entry *blockindex.Entry) (*UndoData, error) {
	if entry.Height == 0 {
		return nil, nil
	}
	if entry.UndoPos == nil {
		return nil, fmt.Errorf("%w: undo for block %s", ErrNotAvailable, entry.Hash)
	}

	payload, checksum, err := s.readRecord(undoFileName(entry.UndoPos.File), entry.UndoPos.Offset, chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("undo for block %s: %w", entry.Hash, err)
	}

	parent := entry.Parent()
	seed := make([]byte, 0, chainhash.HashSize+len(payload))
	seed = append(seed, parent[:]...)
	seed = append(seed, payload...)
	if want := chainhash.DoubleHashH(seed); !bytes.Equal(checksum, want[:]) {
		return nil, fmt.Errorf("%w: undo for block %s: checksum mismatch", ErrDecode, entry.Hash)
	}

	undo, err := decodeUndo(payload)
	if err != nil {
		return nil, fmt.Errorf("undo for block %s: %w", entry.Hash, err)
	}
	return undo, nil
}

// readRecord reads one length-prefixed record at the given payload offset,
// plus trailerLen bytes following the payload. The file handle is scoped to
// this call.
func (s *Store) readRecord(name string, offset uint32, trailerLen int) (payload, trailer []byte, err error) {
	if offset < preambleSize {
		return nil, nil, fmt.Errorf("%w: offset %d lies inside the file preamble", ErrDecode, offset)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	var preamble [preambleSize]byte
	if _, err := f.ReadAt(preamble[:], int64(offset)-preambleSize); err != nil {
		return nil, nil, classifyReadErr(name, offset, err)
	}

	if magic := binary.LittleEndian.Uint32(preamble[:4]); magic != uint32(s.net) {
		return nil, nil, fmt.Errorf("%w: %s offset %d: magic %#08x, want %#08x",
			ErrDecode, name, offset, magic, uint32(s.net))
	}

	length := binary.LittleEndian.Uint32(preamble[4:])
	if length == 0 || length > maxRecordSize {
		return nil, nil, fmt.Errorf("%w: %s offset %d: record length %d out of range",
			ErrDecode, name, offset, length)
	}

	buf := make([]byte, int(length)+trailerLen)
	if _, err := f.ReadAt(buf, int64(offset)); err != nil {
		return nil, nil, classifyReadErr(name, offset, err)
	}
	return buf[:length], buf[length:], nil
}

func classifyReadErr(name string, offset uint32, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s offset %d: file ends mid-record", ErrTruncated, name, offset)
	}
	return fmt.Errorf("%w: %s offset %d: %v", ErrIO, name, offset, err)
}
