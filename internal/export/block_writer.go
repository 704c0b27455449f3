package export

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
	"github.com/goodnatureofminers/blockreader7000-backend/pkg/batcher"
)

type chainBlockWriter struct {
	repo       Repository
	logger     *zap.Logger
	rowBatcher *batcher.Batcher[model.ChainBlock]
}

func newChainBlockWriter(repo Repository, logger *zap.Logger) *chainBlockWriter {
	w := &chainBlockWriter{
		repo:   repo,
		logger: logger,
	}

	w.rowBatcher = batcher.New[model.ChainBlock](
		logger.Named("rowBatcher"),
		w.flush,
		rowBatcherCapacity,
		rowBatcherFlushInterval,
		rowBatcherRPS,
	)
	return w
}

func (w *chainBlockWriter) Start(ctx context.Context) {
	w.rowBatcher.Start(ctx)
}

func (w *chainBlockWriter) Stop() {
	w.rowBatcher.Stop()
}

func (w *chainBlockWriter) WriteBlock(ctx context.Context, b model.ChainBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.rowBatcher.Add(ctx, b)
}

func (w *chainBlockWriter) flush(ctx context.Context, rows []model.ChainBlock) error {
	if err := w.repo.InsertChainBlocks(ctx, rows); err != nil {
		return err
	}
	w.logger.Debug("InsertChainBlocks", zap.Int("count", len(rows)))

	return nil
}
