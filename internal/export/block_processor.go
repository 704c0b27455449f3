// Package export streams the active chain's block index into ClickHouse.
package export

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
	"github.com/goodnatureofminers/blockreader7000-backend/pkg/workerpool"
)

type chainBlockProcessor struct {
	workerCount int
	network     string
	source      ChainSource
	blockWriter BlockWriter
	logger      *zap.Logger
	cancel      func()
}

func (p *chainBlockProcessor) SetCancel(cancel func()) {
	p.cancel = cancel
}

func (p *chainBlockProcessor) Process(ctx context.Context, heights []int32) error {
	return workerpool.Process(ctx, p.workerCount, heights, p.processHeight, p.cancel)
}

func (p *chainBlockProcessor) processHeight(ctx context.Context, height int32) error {
	entry, err := p.source.ByHeight(height)
	if err != nil {
		p.logger.Error("resolve block entry failed", zap.Int32("height", height), zap.Error(err))
		return fmt.Errorf("resolve block at height %d: %w", height, err)
	}

	if err := p.blockWriter.WriteBlock(ctx, rowFromEntry(p.network, entry)); err != nil {
		p.logger.Error("write block row failed", zap.Int32("height", height), zap.Error(err))
		return fmt.Errorf("write block row at height %d: %w", height, err)
	}

	return nil
}

func rowFromEntry(network string, e *blockindex.Entry) model.ChainBlock {
	row := model.ChainBlock{
		Network:    network,
		Height:     e.Height,
		Hash:       e.Hash.String(),
		Timestamp:  e.Header.Timestamp.UTC(),
		Version:    e.Header.Version,
		MerkleRoot: e.Header.MerkleRoot.String(),
		Bits:       e.Header.Bits,
		Nonce:      e.Header.Nonce,
		TxCount:    e.TxCount,
		Status:     e.Status.String(),
		HasData:    e.Status.HasData(),
		HasUndo:    e.Status.HasUndo(),
		DataFile:   -1,
		UndoFile:   -1,
		Work:       e.Work.Text(16),
	}

	if parent := e.Parent(); parent != (chainhash.Hash{}) {
		row.Parent = parent.String()
	}
	if e.DataPos != nil {
		row.DataFile = e.DataPos.File
		row.DataOffset = e.DataPos.Offset
	}
	if e.UndoPos != nil {
		row.UndoFile = e.UndoPos.File
		row.UndoOffset = e.UndoPos.Offset
	}

	return row
}
