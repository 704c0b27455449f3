package reader

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CatalogLoader interface {
		Load(ctx context.Context) (*blockindex.Catalog, error)
	}
	BlockStore interface {
		ReadBlock(entry *blockindex.Entry) (*wire.MsgBlock, error)
		ReadUndo(entry *blockindex.Entry) (*blockfile.UndoData, error)
	}
	ReaderMetrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveReadBlock(err error, started time.Time)
		ObserveReadUndo(err error, started time.Time)
		SetHeights(headerHeight, chainHeight int32)
	}
)
