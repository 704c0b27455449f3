//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal is compiled out without the zmq build tag; the reader
// then refreshes on the periodic interval alone.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq endpoint configured but binary built without zmq support",
			zap.String("addr", addr))
	}
	return nil, nil
}
