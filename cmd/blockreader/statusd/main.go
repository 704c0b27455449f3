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
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/clock"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/model"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/transport"
)

// refreshJitter spreads the periodic reload so a fleet of readers does not
// hit the same node's disks in lockstep.
const refreshJitter = 0.1

type config struct {
	DataDir         string        `long:"datadir" env:"STATUSD_DATADIR" description:"bitcoind data directory containing blocks/" required:"true"`
	Network         model.Network `long:"network" env:"STATUSD_NETWORK" description:"network name" default:"mainnet"`
	ListenAddr      string        `long:"listen" env:"STATUSD_LISTEN" description:"address for the status API" default:":8080"`
	MetricsAddr     string        `long:"metrics-listen" env:"STATUSD_METRICS_LISTEN" description:"address for metrics server" default:":9090"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"STATUSD_REFRESH_INTERVAL" description:"interval between block index reloads" default:"30s"`
	ZMQEndpoint     string        `long:"zmq-endpoint" env:"STATUSD_ZMQ_ENDPOINT" description:"bitcoind zmqpubhashblock endpoint for immediate refresh"`
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
		logger.Fatal("status daemon failed", zap.Error(err))
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

	notify, err := startBlockSignal(ctx, cfg.ZMQEndpoint, logger)
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}
	go refreshLoop(ctx, chainReader, cfg.RefreshInterval, notify, logger)

	mux := http.NewServeMux()
	transport.NewStatusHandler(chainReader, logger).Register(mux)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting status server",
		zap.String("addr", cfg.ListenAddr),
		zap.String("network", cfg.Network.String()))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// refreshLoop reloads the block index on a jittered interval and whenever
// the node announces a new block over notify. A nil notify channel leaves
// only the periodic reload.
func refreshLoop(ctx context.Context, chainReader *reader.Reader, interval time.Duration, notify <-chan struct{}, logger *zap.Logger) {
	timer := time.NewTimer(clock.Jitter(interval, refreshJitter))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		case <-notify:
			if !timer.Stop() {
				<-timer.C
			}
		}

		if err := chainReader.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("refresh failed", zap.Error(err))
		}

		timer.Reset(clock.Jitter(interval, refreshJitter))
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
