// Package rpcclient wraps the btcd RPC client with call metrics and rate
// limiting for use against a shared bitcoind node.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient paces every call through a shared limiter so concurrent
// workers cannot overload the node, and records per-operation metrics.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. rps caps the observed call rate; zero or
// negative disables the cap.
func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}
