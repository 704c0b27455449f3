package export

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		ChainHeight() (int32, error)
		ByHeight(height int32) (*blockindex.Entry, error)
	}
	Repository interface {
		InsertChainBlocks(ctx context.Context, blocks []model.ChainBlock) error
		MaxContiguousHeight(ctx context.Context, network string) (int32, error)
	}
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]int32, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []int32) error
		SetCancel(cancel func())
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteBlock(ctx context.Context, b model.ChainBlock) error
	}
	ExporterMetrics interface {
		ObserveFetchRange(err error, started time.Time)
		ObserveExportBatch(err error, blocks int, started time.Time)
		SetExportedHeight(height int32)
	}
)
