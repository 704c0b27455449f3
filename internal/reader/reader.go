// Package reader is the facade over a node's block index and block files.
// It owns an immutable snapshot of the loaded catalog plus the active chain
// materialized from it, publishes new snapshots atomically on refresh, and
// answers height, hash, block and undo queries against the current one.
package reader

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/chain"
)

// ibdBlockLag is how far the validated tip may trail the best known header
// before the node still counts as syncing, roughly one day of blocks.
const ibdBlockLag = 144

var (
	// ErrNotInitialized is returned by every query until Initialize has
	// published the first snapshot.
	ErrNotInitialized = errors.New("reader not initialized")

	// ErrNotFound is the normal negative result for a height or hash the
	// current snapshot does not know.
	ErrNotFound = errors.New("block not found")
)

// SyncStatus classifies how far block download has progressed.
type SyncStatus int

const (
	StatusNoData SyncStatus = iota
	StatusInProgress
	StatusSynced
)

func (s SyncStatus) String() string {
	switch s {
	case StatusNoData:
		return "no_data"
	case StatusInProgress:
		return "in_progress"
	case StatusSynced:
		return "synced"
	default:
		return "unknown"
	}
}

// snapshot is one result of the load pipeline. It is immutable once
// published; a nil view means headers are known but nothing is validated.
type snapshot struct {
	catalog *blockindex.Catalog
	view    *chain.View
}

// validatedHeight is the active tip height, zero when there is no chain.
func (s *snapshot) validatedHeight() int32 {
	if h := s.view.Height(); h > 0 {
		return h
	}
	return 0
}

// Reader answers read-only chain queries against its current snapshot.
// Queries are safe for concurrent use and lock-free: they load the snapshot
// pointer once and never observe a half-swapped state. Refresh itself is
// not serialized internally; callers run a single refresh loop.
type Reader struct {
	logger  *zap.Logger
	loader  CatalogLoader
	store   BlockStore
	metrics ReaderMetrics

	current atomic.Pointer[snapshot]
}

// New builds an uninitialized Reader. Initialize must succeed before any
// query is answered.
func New(loader CatalogLoader, store BlockStore, metrics ReaderMetrics, logger *zap.Logger) (*Reader, error) {
	if loader == nil {
		return nil, errors.New("catalog loader is required")
	}
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if metrics == nil {
		return nil, errors.New("reader metrics is required")
	}

	return &Reader{
		logger:  logger,
		loader:  loader,
		store:   store,
		metrics: metrics,
	}, nil
}

// Initialize runs the load pipeline and publishes the first snapshot. On
// failure nothing is published and queries keep returning
// ErrNotInitialized. An empty index and a catalog with no validated chain
// are both legitimate ready states.
func (r *Reader) Initialize(ctx context.Context) error {
	if r.current.Load() != nil {
		return errors.New("reader already initialized")
	}

	snap, err := r.rebuild(ctx)
	if err != nil {
		return err
	}
	r.publish(snap)

	r.logger.Info("block reader initialized",
		zap.Int("entries", snap.catalog.Len()),
		zap.Int32("headerHeight", snap.catalog.HeaderHeight),
		zap.Int32("chainHeight", snap.view.Height()),
		zap.String("tip", tipHash(snap)),
	)
	return nil
}

// Refresh rebuilds the snapshot from disk and swaps it in whole. On failure
// the previous snapshot stays published and the error is returned; a failed
// refresh is retryable and never degrades the current state.
func (r *Reader) Refresh(ctx context.Context) error {
	prev := r.current.Load()
	if prev == nil {
		return ErrNotInitialized
	}

	snap, err := r.rebuild(ctx)
	if err != nil {
		return err
	}
	r.publish(snap)

	r.logger.Info("active chain refreshed",
		zap.Int32("oldChainHeight", prev.view.Height()),
		zap.Int32("chainHeight", snap.view.Height()),
		zap.Int32("headerHeight", snap.catalog.HeaderHeight),
		zap.String("tip", tipHash(snap)),
	)
	return nil
}

func (r *Reader) rebuild(ctx context.Context) (snap *snapshot, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveRefresh(err, started) }()

	catalog, err := r.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load block index: %w", err)
	}

	var view *chain.View
	if tip := chain.SelectTip(catalog); tip != nil {
		if view, err = chain.Materialize(catalog, tip); err != nil {
			return nil, fmt.Errorf("materialize active chain: %w", err)
		}
	}

	return &snapshot{catalog: catalog, view: view}, nil
}

func (r *Reader) publish(snap *snapshot) {
	r.current.Store(snap)
	r.metrics.SetHeights(snap.catalog.HeaderHeight, snap.validatedHeight())
}

func (r *Reader) snapshot() (*snapshot, error) {
	snap := r.current.Load()
	if snap == nil {
		return nil, ErrNotInitialized
	}
	return snap, nil
}

// Tip returns the tip entry of the active chain. A nil entry with a nil
// error means headers are known but nothing has been validated yet.
func (r *Reader) Tip() (*blockindex.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.view.Tip(), nil
}

// ByHeight returns the active-chain entry at the given height.
func (r *Reader) ByHeight(height int32) (*blockindex.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	entry := snap.view.ByHeight(height)
	if entry == nil {
		return nil, fmt.Errorf("%w: no active block at height %d", ErrNotFound, height)
	}
	return entry, nil
}

// ByHash returns the entry for hash whether or not it is on the active
// chain; stale forks and headers-only entries resolve too.
func (r *Reader) ByHash(hash *chainhash.Hash) (*blockindex.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	entry := snap.catalog.Entry(*hash)
	if entry == nil {
		return nil, fmt.Errorf("%w: no entry for %s", ErrNotFound, hash)
	}
	return entry, nil
}

// Parent returns the parent entry of entry; the genesis entry has none.
func (r *Reader) Parent(entry *blockindex.Entry) (*blockindex.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	parentHash := entry.Parent()
	if parentHash == (chainhash.Hash{}) {
		return nil, fmt.Errorf("%w: %s has no parent", ErrNotFound, entry.Hash)
	}
	parent := snap.catalog.Entry(parentHash)
	if parent == nil {
		return nil, fmt.Errorf("%w: parent %s of %s", ErrNotFound, parentHash, entry.Hash)
	}
	return parent, nil
}

// IsOnActiveChain reports whether entry is part of the current active
// chain. Entries compare by identity, so an entry held across a refresh
// that reorganized it away reports false.
func (r *Reader) IsOnActiveChain(entry *blockindex.Entry) (bool, error) {
	snap, err := r.snapshot()
	if err != nil {
		return false, err
	}
	return snap.view.Contains(entry), nil
}

// Block reads and decodes the full block for entry from the node's block
// files. The file handle is opened and closed within the call.
func (r *Reader) Block(ctx context.Context, entry *blockindex.Entry) (block *wire.MsgBlock, err error) {
	if _, err = r.snapshot(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() { r.metrics.ObserveReadBlock(err, started) }()
	return r.store.ReadBlock(entry)
}

// Undo reads the spent-output undo data for entry. The genesis block never
// has undo data and yields a nil UndoData with a nil error.
func (r *Reader) Undo(ctx context.Context, entry *blockindex.Entry) (undo *blockfile.UndoData, err error) {
	if _, err = r.snapshot(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() { r.metrics.ObserveReadUndo(err, started) }()
	return r.store.ReadUndo(entry)
}

// Status classifies initial block download against the current snapshot.
func (r *Reader) Status() (SyncStatus, error) {
	snap, err := r.snapshot()
	if err != nil {
		return StatusNoData, err
	}
	return classifySync(snap.catalog.HeaderHeight, snap.validatedHeight()), nil
}

// HeaderHeight returns the maximum height over all known entries,
// validated or not.
func (r *Reader) HeaderHeight() (int32, error) {
	snap, err := r.snapshot()
	if err != nil {
		return 0, err
	}
	return snap.catalog.HeaderHeight, nil
}

// ChainHeight returns the height of the validated tip, or -1 when no chain
// has been validated yet.
func (r *Reader) ChainHeight() (int32, error) {
	snap, err := r.snapshot()
	if err != nil {
		return 0, err
	}
	return snap.view.Height(), nil
}

func classifySync(headerHeight, validatedHeight int32) SyncStatus {
	switch {
	case headerHeight == 0:
		return StatusNoData
	case validatedHeight == 0:
		return StatusInProgress
	case headerHeight-validatedHeight > ibdBlockLag:
		return StatusInProgress
	default:
		return StatusSynced
	}
}

func tipHash(snap *snapshot) string {
	tip := snap.view.Tip()
	if tip == nil {
		return "none"
	}
	return tip.Hash.String()
}
