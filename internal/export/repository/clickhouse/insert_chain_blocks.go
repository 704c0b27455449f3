package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
)

// InsertChainBlocks stores active-chain block rows in ClickHouse.
func (r *Repository) InsertChainBlocks(ctx context.Context, blocks []model.ChainBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chain_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO chain_blocks (
	network,
	height,
	hash,
	parent,
	timestamp,
	version,
	merkleroot,
	bits,
	nonce,
	tx_count,
	status,
	has_data,
	has_undo,
	data_file,
	data_offset,
	undo_file,
	undo_offset,
	work
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare chain blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Network,
			block.Height,
			block.Hash,
			block.Parent,
			block.Timestamp,
			block.Version,
			block.MerkleRoot,
			block.Bits,
			block.Nonce,
			block.TxCount,
			block.Status,
			block.HasData,
			block.HasUndo,
			block.DataFile,
			block.DataOffset,
			block.UndoFile,
			block.UndoOffset,
			block.Work,
		); err != nil {
			return fmt.Errorf("append chain block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain blocks: %w", err)
	}
	return nil
}
