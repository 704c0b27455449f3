package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/analyze"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/model"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
)

type config struct {
	DataDir string        `long:"datadir" env:"ANALYZE_DATADIR" description:"bitcoind data directory containing blocks/" required:"true"`
	Network model.Network `long:"network" env:"ANALYZE_NETWORK" description:"network name" default:"mainnet"`
	Blocks  int           `long:"blocks" env:"ANALYZE_BLOCKS" description:"number of recent blocks to analyze" default:"100"`
	Workers int           `long:"workers" env:"ANALYZE_WORKERS" description:"concurrent block readers" default:"4"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chain analysis failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := cfg.Network.ChainParams()
	if err != nil {
		return err
	}

	chainReader, err := reader.New(
		blockindex.NewLoader(cfg.DataDir, logger),
		blockfile.NewStore(cfg.DataDir, params.Net),
		metrics.NewReader(cfg.Network.String()),
		logger,
	)
	if err != nil {
		return err
	}
	if err := chainReader.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize reader: %w", err)
	}

	svc, err := analyze.NewService(chainReader, cfg.Workers, logger)
	if err != nil {
		return err
	}

	stats, summary, err := svc.Run(ctx, cfg.Blocks)
	if err != nil {
		return err
	}

	for _, st := range stats {
		logger.Info("block analyzed",
			zap.Int32("height", st.Height),
			zap.Stringer("hash", st.Hash),
			zap.Time("time", st.Time),
			zap.Int("transactions", st.TxCount),
			zap.String("total_output", st.TotalOutput.String()),
			zap.String("total_fees", st.TotalFees.String()),
			zap.Int("large_transactions", st.LargeTxCount))
	}

	logger.Info("analysis complete",
		zap.Int("blocks", summary.Blocks),
		zap.Int("skipped", summary.Skipped),
		zap.Int("transactions", summary.Transactions),
		zap.String("total_output", summary.TotalOutput.String()),
		zap.String("total_fees", summary.TotalFees.String()),
		zap.Int("large_transactions", summary.LargeTxs),
		zap.Duration("elapsed", summary.Elapsed),
		zap.Float64("blocks_per_second", summary.BlocksPerSecond))

	return nil
}
