// Package analyze computes fee and volume statistics over the most recent
// blocks of the active chain.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/pkg/workerpool"
)

// largeTxOutputThreshold flags transactions moving more than 10 BTC.
const largeTxOutputThreshold = btcutil.Amount(10 * btcutil.SatoshiPerBitcoin)

// BlockStats holds the analysis results for a single block.
type BlockStats struct {
	Height       int32
	Hash         chainhash.Hash
	Time         time.Time
	TxCount      int
	TotalOutput  btcutil.Amount
	TotalFees    btcutil.Amount
	LargeTxCount int
}

// Summary aggregates a run over multiple blocks.
type Summary struct {
	Blocks          int
	Skipped         int
	Transactions    int
	TotalOutput     btcutil.Amount
	TotalFees       btcutil.Amount
	LargeTxs        int
	Elapsed         time.Duration
	BlocksPerSecond float64
}

// Service walks the active chain backwards from the tip and derives
// per-block statistics from the raw block and its undo data.
type Service struct {
	source  BlockSource
	logger  *zap.Logger
	workers int
}

func NewService(source BlockSource, workers int, logger *zap.Logger) (*Service, error) {
	if workers <= 0 {
		return nil, errors.New("workers must be positive")
	}
	return &Service{
		source:  source,
		logger:  logger,
		workers: workers,
	}, nil
}

// Run analyzes the last blockCount blocks of the active chain and returns
// per-block stats ordered by height together with run totals. Genesis and
// blocks whose undo data has been pruned are skipped, not failed.
func (s *Service) Run(ctx context.Context, blockCount int) ([]BlockStats, Summary, error) {
	if blockCount <= 0 {
		return nil, Summary{}, errors.New("block count must be positive")
	}

	entries, err := s.lastEntries(blockCount)
	if err != nil {
		return nil, Summary{}, err
	}

	started := time.Now()
	stats, err := workerpool.Collect(ctx, s.workers, entries, s.analyzeBlock)
	if err != nil {
		return nil, Summary{}, err
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Height < stats[j].Height })

	return stats, summarize(stats, len(entries), time.Since(started)), nil
}

// lastEntries returns up to n most recent active-chain entries, oldest
// first.
func (s *Service) lastEntries(n int) ([]*blockindex.Entry, error) {
	tip, err := s.source.Tip()
	if err != nil {
		return nil, fmt.Errorf("chain tip: %w", err)
	}
	if tip == nil {
		return nil, errors.New("no validated chain to analyze")
	}

	entries := make([]*blockindex.Entry, 0, n)
	for entry := tip; len(entries) < n; {
		entries = append(entries, entry)
		if entry.Height == 0 {
			break
		}
		parent, err := s.source.Parent(entry)
		if err != nil {
			return nil, fmt.Errorf("parent of %s: %w", entry.Hash, err)
		}
		entry = parent
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *Service) analyzeBlock(ctx context.Context, entry *blockindex.Entry) (*BlockStats, error) {
	if entry.Height == 0 {
		s.logger.Warn("skipping genesis block, it has no undo data")
		return nil, nil
	}
	if !entry.Status.HasUndo() {
		s.logger.Warn("skipping block without undo data",
			zap.Int32("height", entry.Height),
			zap.Stringer("hash", entry.Hash))
		return nil, nil
	}

	block, err := s.source.Block(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("read block at height %d: %w", entry.Height, err)
	}
	undo, err := s.source.Undo(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("read undo at height %d: %w", entry.Height, err)
	}

	stats := &BlockStats{
		Height:  entry.Height,
		Hash:    entry.Hash,
		Time:    entry.Header.Timestamp.UTC(),
		TxCount: len(block.Transactions),
	}

	for i, tx := range block.Transactions {
		var outputTotal btcutil.Amount
		for _, out := range tx.TxOut {
			outputTotal += btcutil.Amount(out.Value)
		}
		stats.TotalOutput += outputTotal
		if outputTotal > largeTxOutputThreshold {
			stats.LargeTxCount++
		}

		// The coinbase spends nothing and pays no fee; undo slots start
		// at the second transaction.
		if i == 0 {
			continue
		}
		if i-1 >= len(undo.Spent) {
			return nil, fmt.Errorf("undo data at height %d covers %d transactions, block has %d",
				entry.Height, len(undo.Spent)+1, len(block.Transactions))
		}

		var inputTotal btcutil.Amount
		for _, spent := range undo.Spent[i-1] {
			inputTotal += btcutil.Amount(spent.Amount)
		}
		fee := inputTotal - outputTotal
		if fee < 0 {
			s.logger.Warn("skipping transaction with negative fee",
				zap.Int32("height", entry.Height),
				zap.Stringer("txid", tx.TxHash()),
				zap.Int64("fee", int64(fee)))
			continue
		}
		stats.TotalFees += fee
	}

	return stats, nil
}

func summarize(stats []BlockStats, analyzed int, elapsed time.Duration) Summary {
	summary := Summary{
		Blocks:  len(stats),
		Skipped: analyzed - len(stats),
		Elapsed: elapsed,
	}
	for _, st := range stats {
		summary.Transactions += st.TxCount
		summary.TotalOutput += st.TotalOutput
		summary.TotalFees += st.TotalFees
		summary.LargeTxs += st.LargeTxCount
	}
	if secs := elapsed.Seconds(); secs > 0 {
		summary.BlocksPerSecond = float64(len(stats)) / secs
	}
	return summary
}
