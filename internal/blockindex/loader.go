package blockindex

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/goleveldb/leveldb"
	"github.com/btcsuite/goleveldb/leveldb/opt"
	"github.com/btcsuite/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// entryKeyPrefix tags block index records in the LevelDB; the remainder of
// the key is the block hash.
const entryKeyPrefix = 'b'

// ctxCheckInterval is how many records are scanned between context checks.
const ctxCheckInterval = 1 << 12

// Loader reads the node's persisted block index. Every Load opens the store
// read-only, scans it once, and releases it before any downstream
// processing, so the store is never held for longer than one bulk pass.
type Loader struct {
	path   string
	logger *zap.Logger
}

// NewLoader returns a Loader for the block index under dataDir.
func NewLoader(dataDir string, logger *zap.Logger) *Loader {
	return &Loader{
		path:   filepath.Join(dataDir, "blocks", "index"),
		logger: logger,
	}
}

// Load scans every index record and returns the rebuilt catalog together
// with the maximum height seen across all entries. The catalog is freshly
// allocated on every call; previously returned catalogs are never touched,
// so a failed load leaves published state intact.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	started := time.Now()

	// The store handle lives only for the scan; work accumulation below
	// runs against the in-memory copy.
	entries, headerHeight, err := l.scan(ctx)
	if err != nil {
		return nil, err
	}

	accumulateWork(entries)

	l.logger.Debug("loaded block index",
		zap.Int("entries", len(entries)),
		zap.Int32("header_height", headerHeight),
		zap.Duration("took", time.Since(started)),
	)

	return &Catalog{Entries: entries, HeaderHeight: headerHeight}, nil
}

func (l *Loader) scan(ctx context.Context) (map[chainhash.Hash]*Entry, int32, error) {
	db, err := leveldb.OpenFile(l.path, &opt.Options{
		Compression: opt.NoCompression,
		ReadOnly:    true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("open block index at %s: %w", l.path, err)
	}
	defer db.Close()

	iter := db.NewIterator(util.BytesPrefix([]byte{entryKeyPrefix}), nil)
	defer iter.Release()

	entries := make(map[chainhash.Hash]*Entry)
	var headerHeight int32
	var sequence uint64

	for iter.Next() {
		if sequence%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("block index scan interrupted: %w", ctx.Err())
			default:
			}
		}

		key := iter.Key()
		if len(key) != 1+chainhash.HashSize {
			return nil, 0, fmt.Errorf("block index key %x has length %d", key, len(key))
		}

		hash, err := chainhash.NewHash(key[1:])
		if err != nil {
			return nil, 0, fmt.Errorf("block index key %x: %w", key, err)
		}

		entry, err := decodeEntry(*hash, iter.Value())
		if err != nil {
			return nil, 0, fmt.Errorf("block index record %s: %w", hash, err)
		}

		entry.Sequence = sequence
		sequence++

		entries[entry.Hash] = entry
		if entry.Height > headerHeight {
			headerHeight = entry.Height
		}
	}
	if err := iter.Error(); err != nil {
		return nil, 0, fmt.Errorf("scan block index: %w", err)
	}

	return entries, headerHeight, nil
}
