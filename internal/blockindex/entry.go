// Package blockindex loads the block-header catalog a Bitcoin Core node
// persists under blocks/index and exposes it as immutable in-memory entries.
package blockindex

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// FilePos locates a record inside a numbered block or undo file. The offset
// addresses the record payload; the eight-byte magic/length preamble sits
// immediately before it.
type FilePos struct {
	File   int32
	Offset uint32
}

// Entry is one block-header record from the index, immutable after load.
type Entry struct {
	// Hash is the header digest, taken from the index key.
	Hash chainhash.Hash

	// Height in the block tree; the genesis entry is at height zero.
	Height int32

	// Header carries the raw header fields. They are opaque to this
	// subsystem beyond Bits (work) and PrevBlock (ancestry).
	Header wire.BlockHeader

	// Status is the persisted validation/storage bitset.
	Status Status

	// TxCount is the number of transactions in the block, zero until the
	// block body has been indexed.
	TxCount uint64

	// DataPos and UndoPos are set iff the corresponding status flag is.
	DataPos *FilePos
	UndoPos *FilePos

	// Work is the cumulative proof-of-work from genesis through this
	// entry, recomputed at load time.
	Work *big.Int

	// Sequence is the load-order counter used only to break work ties in
	// chain selection; earlier entries win.
	Sequence uint64
}

// Parent returns the hash of the parent header. For the genesis entry this
// is the all-zero hash, which resolves to no catalog entry.
func (e *Entry) Parent() chainhash.Hash { return e.Header.PrevBlock }

// Catalog is the full set of known entries keyed by hash, rebuilt wholesale
// on every load so readers never observe a partially updated view.
type Catalog struct {
	Entries map[chainhash.Hash]*Entry

	// HeaderHeight is the maximum height over all entries, validated or
	// not.
	HeaderHeight int32
}

// Entry returns the entry for hash, or nil when unknown.
func (c *Catalog) Entry(hash chainhash.Hash) *Entry {
	return c.Entries[hash]
}

// Len returns the number of known entries.
func (c *Catalog) Len() int { return len(c.Entries) }
