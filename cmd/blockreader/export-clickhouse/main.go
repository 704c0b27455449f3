package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/clock"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/export"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/repository/clickhouse"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/model"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
)

type config struct {
	DataDir         string        `long:"datadir" env:"EXPORT_DATADIR" description:"bitcoind data directory containing blocks/" required:"true"`
	Network         model.Network `long:"network" env:"EXPORT_NETWORK" description:"network name" default:"mainnet"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"EXPORT_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"EXPORT_REFRESH_INTERVAL" description:"interval between block index reloads" default:"60s"`
	MetricsAddr     string        `long:"metrics-addr" env:"EXPORT_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chain block exporter failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

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
	go refreshLoop(ctx, chainReader, cfg.RefreshInterval, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network.String()))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	svc, err := export.NewService(
		repo,
		chainReader,
		metrics.NewExporter(cfg.Network.String()),
		cfg.Network.String(),
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

// refreshLoop keeps the in-memory index tracking the node while the
// exporter drains it.
func refreshLoop(ctx context.Context, chainReader *reader.Reader, interval time.Duration, logger *zap.Logger) {
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return
		}
		if err := chainReader.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("refresh failed", zap.Error(err))
		}
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
