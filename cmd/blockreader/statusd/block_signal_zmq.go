//go:build zmq

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const hashblockTopic = "hashblock"

// startBlockSignal subscribes to bitcoind's zmqpubhashblock endpoint and
// signals on the returned channel whenever the node announces a block. A
// pending signal absorbs later ones, so the publisher is never blocked.
// An empty addr disables the subscription.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := newSubscriber(addr, hashblockTopic)
	if err != nil {
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	logger.Info("subscribed to block signals", zap.String("addr", addr))

	notify := make(chan struct{}, 1)

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			parts, err := sub.RecvMessageBytes(0)
			if err != nil {
				logger.Warn("zmq recv failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(parts) < 2 || len(parts[1]) != chainhash.HashSize {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(parts)))
				continue
			}
			logger.Debug("block announced", zap.String("payload", fmt.Sprintf("%x", parts[1])))

			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	return notify, nil
}

func newSubscriber(addr, topic string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}

	if err := sub.SetSubscribe(topic); err != nil {
		sub.Close()
		return nil, err
	}

	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
