package blockindex

import (
	"fmt"
	"strings"
)

// Status mirrors the validation/storage status bitset persisted with every
// block index record. The low three bits carry the validity level the block
// reached; the remaining bits are independent flags. Bits are only ever
// gained over an entry's lifetime, and the failed bits are sticky.
type Status uint32

const (
	// Validity levels, ordered. A block at level n passed every check of
	// all levels below n as well.
	StatusValidHeader       Status = 1
	StatusValidTree         Status = 2
	StatusValidTransactions Status = 3
	StatusValidChain        Status = 4
	StatusValidScripts      Status = 5

	statusValidityMask Status = 7

	// StatusHaveData is set once the full block is stored in a block file.
	StatusHaveData Status = 8
	// StatusHaveUndo is set once undo data is stored in an undo file.
	StatusHaveUndo Status = 16
	// StatusFailed marks a block that failed validation.
	StatusFailed Status = 32
	// StatusFailedChild marks a descendant of a failed block.
	StatusFailedChild Status = 64
	// StatusWitness is set for blocks validated under witness rules.
	StatusWitness Status = 128
)

// IsValid reports whether the block reached the given validity level and is
// not poisoned by a validation failure anywhere in its ancestry.
func (s Status) IsValid(upTo Status) bool {
	if s.Failed() {
		return false
	}
	return s&statusValidityMask >= upTo
}

// HasData reports whether the full block is available in a block file.
func (s Status) HasData() bool { return s&StatusHaveData != 0 }

// HasUndo reports whether undo data is available in an undo file.
func (s Status) HasUndo() bool { return s&StatusHaveUndo != 0 }

// Failed reports whether the block or one of its ancestors failed
// validation. Failed entries never participate in chain selection.
func (s Status) Failed() bool { return s&(StatusFailed|StatusFailedChild) != 0 }

// HasWitness reports whether the block was validated under witness rules.
func (s Status) HasWitness() bool { return s&StatusWitness != 0 }

// String renders the status for logs and exports, e.g. "scripts|data|undo".
func (s Status) String() string {
	parts := make([]string, 0, 5)

	switch s & statusValidityMask {
	case StatusValidHeader:
		parts = append(parts, "header")
	case StatusValidTree:
		parts = append(parts, "tree")
	case StatusValidTransactions:
		parts = append(parts, "transactions")
	case StatusValidChain:
		parts = append(parts, "chain")
	case StatusValidScripts:
		parts = append(parts, "scripts")
	default:
		parts = append(parts, "unknown")
	}

	if s.HasData() {
		parts = append(parts, "data")
	}
	if s.HasUndo() {
		parts = append(parts, "undo")
	}
	if s&StatusFailed != 0 {
		parts = append(parts, "failed")
	}
	if s&StatusFailedChild != 0 {
		parts = append(parts, "failed-child")
	}
	if s.HasWitness() {
		parts = append(parts, "witness")
	}

	if s > statusValidityMask|StatusHaveData|StatusHaveUndo|StatusFailed|StatusFailedChild|StatusWitness {
		parts = append(parts, fmt.Sprintf("extra(%#x)", uint32(s)))
	}

	return strings.Join(parts, "|")
}
