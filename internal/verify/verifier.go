// Package verify spot-checks the locally read chain against a trusted node.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/pkg/workerpool"
)

// Mismatch records one sampled height whose local hash disagrees with the
// node's.
type Mismatch struct {
	Height    int32
	LocalHash string
	NodeHash  string
}

// Report summarizes one verification run. The node being ahead of the local
// view is expected while the node syncs; only hash mismatches fail a run.
type Report struct {
	ChainHeight int32
	NodeHeight  int64
	Sampled     int
	Mismatches  []Mismatch
}

// OK reports whether every sampled hash matched the node.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Service compares hashes of randomly sampled active-chain heights with the
// hashes a trusted node reports for the same heights.
type Service struct {
	chain   ChainView
	node    NodeClient
	logger  *zap.Logger
	samples int
	workers int
}

func NewService(chain ChainView, node NodeClient, samples, workers int, logger *zap.Logger) (*Service, error) {
	if samples <= 0 {
		return nil, errors.New("samples must be positive")
	}
	if workers <= 0 {
		return nil, errors.New("workers must be positive")
	}
	return &Service{
		chain:   chain,
		node:    node,
		logger:  logger,
		samples: samples,
		workers: workers,
	}, nil
}

// Run samples heights across the active chain, genesis and tip always
// included, and checks each local hash against the node. Mismatches are
// collected into the report; an error is returned only when a lookup itself
// fails.
func (s *Service) Run(ctx context.Context) (Report, error) {
	chainHeight, err := s.chain.ChainHeight()
	if err != nil {
		return Report{}, fmt.Errorf("local chain height: %w", err)
	}
	if chainHeight < 0 {
		return Report{}, errors.New("no validated chain to verify")
	}

	nodeHeight, err := s.node.GetBlockCount()
	if err != nil {
		return Report{}, fmt.Errorf("node block count: %w", err)
	}

	heights := sampleHeights(s.samples, chainHeight)
	s.logger.Info("verifying sampled blocks",
		zap.Int("sample_count", len(heights)),
		zap.Int32("chain_height", chainHeight),
		zap.Int64("node_height", nodeHeight))

	var (
		mu         sync.Mutex
		mismatches []Mismatch
	)
	err = workerpool.Process(ctx, s.workers, heights, func(_ context.Context, height int32) error {
		entry, err := s.chain.ByHeight(height)
		if err != nil {
			return fmt.Errorf("local entry at height %d: %w", height, err)
		}
		nodeHash, err := s.node.GetBlockHash(int64(height))
		if err != nil {
			return fmt.Errorf("node hash at height %d: %w", height, err)
		}
		if entry.Hash != *nodeHash {
			mu.Lock()
			mismatches = append(mismatches, Mismatch{
				Height:    height,
				LocalHash: entry.Hash.String(),
				NodeHash:  nodeHash.String(),
			})
			mu.Unlock()
			s.logger.Error("block hash mismatch",
				zap.Int32("height", height),
				zap.String("local_hash", entry.Hash.String()),
				zap.String("node_hash", nodeHash.String()))
		}
		return nil
	}, nil)
	if err != nil {
		return Report{}, err
	}

	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Height < mismatches[j].Height })

	if nodeHeight != int64(chainHeight) {
		s.logger.Warn("node and local chain heights differ",
			zap.Int64("node_height", nodeHeight),
			zap.Int32("chain_height", chainHeight))
	}

	return Report{
		ChainHeight: chainHeight,
		NodeHeight:  nodeHeight,
		Sampled:     len(heights),
		Mismatches:  mismatches,
	}, nil
}

// sampleHeights picks up to n distinct heights in [0, chainHeight], sorted
// ascending. Genesis and the tip are always part of the sample.
func sampleHeights(n int, chainHeight int32) []int32 {
	picked := map[int32]struct{}{
		0:           {},
		chainHeight: {},
	}
	for len(picked) < n && len(picked) < int(chainHeight)+1 {
		picked[rand.Int31n(chainHeight+1)] = struct{}{}
	}

	heights := make([]int32, 0, len(picked))
	for height := range picked {
		heights = append(heights, height)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
