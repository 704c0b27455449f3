// Package model defines the rows written to ClickHouse analytical tables.
package model

import "time"

// ChainBlock is one active-chain block index entry flattened into a row of
// the chain_blocks table. File positions use -1 for the file number when the
// corresponding payload has not been stored.
type ChainBlock struct {
	Network    string
	Height     int32
	Hash       string
	Parent     string
	Timestamp  time.Time
	Version    int32
	MerkleRoot string
	Bits       uint32
	Nonce      uint32
	TxCount    uint64
	Status     string
	HasData    bool
	HasUndo    bool
	DataFile   int32
	DataOffset uint32
	UndoFile   int32
	UndoOffset uint32
	Work       string
}
