package export

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/clock"
)

// Service keeps the chain_blocks table in step with the active chain: each
// iteration resumes from the highest contiguously exported height and writes
// every newer active-chain entry as a row.
type Service struct {
	logger                 *zap.Logger
	network                string
	metrics                ExporterMetrics
	sleep                  func(context.Context, time.Duration) error
	idleSleepDuration      time.Duration
	postBatchSleepDuration time.Duration
	heightFetcher          HeightFetcher
	blockProcessor         BlockProcessor
	blockWriter            BlockWriter
}

func NewService(
	repo Repository,
	source ChainSource,
	metrics ExporterMetrics,
	network string,
	logger *zap.Logger,
) (*Service, error) {
	logger = logger.With(zap.String("network", network))

	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}

	w := newChainBlockWriter(repo, logger)

	return &Service{
		logger:                 logger,
		network:                network,
		metrics:                metrics,
		sleep:                  clock.SleepWithContext,
		idleSleepDuration:      idleSleepDuration,
		postBatchSleepDuration: postBatchSleepDuration,
		heightFetcher: &rangeFetcher{
			source:      source,
			repo:        repo,
			metrics:     metrics,
			network:     network,
			chunkSize:   exportChunkSize,
			resyncDepth: reorgResyncDepth,
		},
		blockWriter: w,
		blockProcessor: &chainBlockProcessor{
			workerCount: defaultWorkerCount,
			network:     network,
			source:      source,
			blockWriter: w,
			logger:      logger.Named("blockProcessor"),
		},
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	bwCtx, bwCancel := context.WithCancel(ctx)
	s.blockProcessor.SetCancel(bwCancel)

	s.blockWriter.Start(bwCtx)
	defer func() {
		bwCancel()
		s.blockWriter.Stop()
	}()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", sleepDuration))
			if sleepErr := s.sleep(ctx, sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.observeFetch(err, started)
	if err != nil {
		s.logger.Error("fetch export range failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("chain fully exported; going idle", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("exporting blocks",
		zap.Int("height_count", len(heights)),
		zap.Int32("from", heights[0]),
		zap.Int32("to", heights[len(heights)-1]),
	)
	started = time.Now()
	if err := s.blockProcessor.Process(ctx, heights); err != nil {
		s.observeBatch(err, len(heights), started)
		s.logger.Error("export batch failed", zap.Int("height_count", len(heights)), zap.Error(err))
		return err
	}
	s.observeBatch(nil, len(heights), started)

	return s.sleep(ctx, s.postBatchSleepDuration)
}

func (s *Service) observeFetch(err error, started time.Time) {
	s.metrics.ObserveFetchRange(err, started)
}

func (s *Service) observeBatch(err error, blocks int, started time.Time) {
	s.metrics.ObserveExportBatch(err, blocks, started)
}
