package export

import (
	"context"
	"fmt"
)

type rangeFetcher struct {
	source      ChainSource
	repo        Repository
	metrics     ExporterMetrics
	network     string
	chunkSize   int32
	resyncDepth int32
}

// Fetch returns the next contiguous run of heights to export, or nil when the
// table already covers the active chain. Catch-up runs restart resyncDepth
// below the resume point so a reorged tail is overwritten rather than kept.
func (f *rangeFetcher) Fetch(ctx context.Context) ([]int32, error) {
	chainHeight, err := f.source.ChainHeight()
	if err != nil {
		return nil, fmt.Errorf("chain height: %w", err)
	}

	exported, err := f.repo.MaxContiguousHeight(ctx, f.network)
	if err != nil {
		return nil, fmt.Errorf("max contiguous height: %w", err)
	}
	f.metrics.SetExportedHeight(exported)

	if chainHeight < 0 || exported >= chainHeight {
		return nil, nil
	}

	start := exported + 1 - f.resyncDepth
	if start < 0 {
		start = 0
	}
	end := chainHeight
	if last := start + f.chunkSize - 1; end > last {
		end = last
	}

	heights := make([]int32, 0, end-start+1)
	for h := start; h <= end; h++ {
		heights = append(heights, h)
	}

	return heights, nil
}
