package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

// BrokenChainError reports an ancestry walk that could not be completed down
// to genesis, which means the index is corrupt or was captured mid-write.
type BrokenChainError struct {
	// Hash and Height identify the entry whose ancestry could not be
	// extended.
	Hash   chainhash.Hash
	Height int32
	Reason string
}

func (e *BrokenChainError) Error() string {
	return fmt.Sprintf("broken chain at %s (height %d): %s", e.Hash, e.Height, e.Reason)
}

// View is an active chain materialized as a height-indexed sequence: the
// entry at index i is the unique ancestor of the tip at height i. A View is
// immutable once built and safe for concurrent readers; methods tolerate a
// nil receiver so callers can hold "no validated chain yet" as a nil View.
type View struct {
	entries []*blockindex.Entry
}

// Materialize walks parent links from tip back to genesis and returns the
// ascending-height view of that ancestry. It fails with a BrokenChainError
// when a parent is missing from the catalog, when heights do not step down
// by one along the walk, or when the walk terminates above height zero.
// The catalog is not modified.
func Materialize(catalog *blockindex.Catalog, tip *blockindex.Entry) (*View, error) {
	entries := make([]*blockindex.Entry, tip.Height+1)

	for entry := tip; ; {
		entries[entry.Height] = entry

		parent := entry.Parent()
		if parent == (chainhash.Hash{}) {
			if entry.Height != 0 {
				return nil, &BrokenChainError{
					Hash:   entry.Hash,
					Height: entry.Height,
					Reason: "no parent link above height 0",
				}
			}
			return &View{entries: entries}, nil
		}

		next := catalog.Entry(parent)
		if next == nil {
			return nil, &BrokenChainError{
				Hash:   entry.Hash,
				Height: entry.Height,
				Reason: fmt.Sprintf("parent %s not in catalog", parent),
			}
		}
		if next.Height != entry.Height-1 {
			return nil, &BrokenChainError{
				Hash:   entry.Hash,
				Height: entry.Height,
				Reason: fmt.Sprintf("parent %s has height %d, want %d",
					parent, next.Height, entry.Height-1),
			}
		}
		entry = next
	}
}

// Tip returns the highest entry of the view, or nil for an empty view.
func (v *View) Tip() *blockindex.Entry {
	if v == nil || len(v.entries) == 0 {
		return nil
	}
	return v.entries[len(v.entries)-1]
}

// Genesis returns the entry at height zero, or nil for an empty view.
func (v *View) Genesis() *blockindex.Entry {
	if v == nil || len(v.entries) == 0 {
		return nil
	}
	return v.entries[0]
}

// Height returns the tip height, or -1 for an empty view.
func (v *View) Height() int32 {
	if v == nil {
		return -1
	}
	return int32(len(v.entries)) - 1
}

// Len returns the number of entries in the view.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// ByHeight returns the entry at the given height, or nil when the height
// lies outside the view.
func (v *View) ByHeight(height int32) *blockindex.Entry {
	if v == nil || height < 0 || height >= int32(len(v.entries)) {
		return nil
	}
	return v.entries[height]
}

// Contains reports whether entry is part of the active chain. An entry
// belongs to the chain iff the view holds that same entry at the entry's
// own height; entries from abandoned forks share heights with the chain
// but never satisfy this.
func (v *View) Contains(entry *blockindex.Entry) bool {
	return entry != nil && v.ByHeight(entry.Height) == entry
}

// Next returns the successor of entry on the active chain, or nil when
// entry is the tip or not on the chain at all.
func (v *View) Next(entry *blockindex.Entry) *blockindex.Entry {
	if !v.Contains(entry) {
		return nil
	}
	return v.ByHeight(entry.Height + 1)
}
