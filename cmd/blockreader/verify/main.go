package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/model"
	rpcclient2 "github.com/goodnatureofminers/blockreader7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/verify"
)

type config struct {
	DataDir     string        `long:"datadir" env:"VERIFY_DATADIR" description:"bitcoind data directory containing blocks/" required:"true"`
	Network     model.Network `long:"network" env:"VERIFY_NETWORK" description:"network name" default:"mainnet"`
	RPCURL      string        `long:"rpc-url" env:"VERIFY_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"VERIFY_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string        `long:"rpc-password" env:"VERIFY_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Samples     int           `long:"samples" env:"VERIFY_SAMPLES" description:"number of heights to spot-check" default:"32"`
	Workers     int           `long:"workers" env:"VERIFY_WORKERS" description:"concurrent lookups" default:"4"`
	RPS         int           `long:"rps" env:"VERIFY_RPS" description:"max node RPC calls per second" default:"8"`
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
		logger.Fatal("verification failed", zap.Error(err))
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

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	node := rpcclient2.NewObservedClient(rpcClient, metrics.NewNodeRPC(cfg.Network.String()), cfg.RPS)

	svc, err := verify.NewService(chainReader, node, cfg.Samples, cfg.Workers, logger)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("verification finished",
		zap.Int32("chain_height", report.ChainHeight),
		zap.Int64("node_height", report.NodeHeight),
		zap.Int("sampled", report.Sampled),
		zap.Int("mismatches", len(report.Mismatches)))

	if !report.OK() {
		return fmt.Errorf("%d of %d sampled blocks mismatched the node", len(report.Mismatches), report.Sampled)
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(connCfg, nil)
}
