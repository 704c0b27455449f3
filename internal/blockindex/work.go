package blockindex

import (
	"math/big"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// compactToBig expands the compact difficulty representation stored in a
// header's Bits field into the full 256-bit target.
func compactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	exponent := uint(compact >> 24)

	var target *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target = big.NewInt(int64(mantissa))
	} else {
		target = big.NewInt(int64(mantissa))
		target.Lsh(target, 8*(exponent-3))
	}

	if compact&0x00800000 != 0 {
		target.Neg(target)
	}
	return target
}

// blockProof returns the expected number of hashes needed to find a block at
// the difficulty encoded by bits: 2^256 / (target + 1). Invalid targets
// contribute zero work.
func blockProof(bits uint32) *big.Int {
	target := compactToBig(bits)
	if target.Sign() <= 0 || target.Cmp(oneLsh256) >= 0 {
		return new(big.Int)
	}

	denom := new(big.Int).Add(target, big.NewInt(1))
	return denom.Div(oneLsh256, denom)
}

// accumulateWork fills in the cumulative work of every entry by walking the
// forest in ascending height order, so each parent's total is known before
// its children are visited. Entries whose parent is missing from the catalog
// keep only their own proof; such branches cannot be materialized into a
// chain and are rejected later by the ancestry walk.
func accumulateWork(entries map[chainhash.Hash]*Entry) {
	sorted := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })

	for _, e := range sorted {
		proof := blockProof(e.Header.Bits)
		if parent := entries[e.Parent()]; parent != nil && parent.Work != nil {
			e.Work = new(big.Int).Add(parent.Work, proof)
		} else {
			e.Work = proof
		}
	}
}
