// Package chain selects the best validated tip from a block index catalog
// and materializes its ancestry as a height-indexed view.
package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

// SelectTip returns the best fully-validated tip in the catalog, or nil when
// no entry qualifies. Eligible entries have reached script validity and are
// not poisoned by a failure anywhere in their ancestry. The result is a pure
// function of the catalog: the same catalog always yields the same tip.
func SelectTip(catalog *blockindex.Catalog) *blockindex.Entry {
	var best *blockindex.Entry
	for _, entry := range catalog.Entries {
		if !entry.Status.IsValid(blockindex.StatusValidScripts) {
			continue
		}
		if better(entry, best) {
			best = entry
		}
	}
	return best
}

// better reports whether entry ranks above the current candidate: more work
// wins, then the earlier-discovered entry (lower sequence id), then a fixed
// order over the hash bytes. The last rung cannot be reached while sequence
// ids are unique; it only pins the order down should that ever change.
func better(entry, than *blockindex.Entry) bool {
	if than == nil {
		return true
	}
	if c := entry.Work.Cmp(than.Work); c != 0 {
		return c > 0
	}
	if entry.Sequence != than.Sequence {
		return entry.Sequence < than.Sequence
	}
	return hashGreater(entry.Hash, than.Hash)
}

// hashGreater compares two hashes as 256-bit little-endian integers.
func hashGreater(a, b chainhash.Hash) bool {
	for i := chainhash.HashSize - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
