package analyze

import (
	"context"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockfile"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Tip() (*blockindex.Entry, error)
		Parent(entry *blockindex.Entry) (*blockindex.Entry, error)
		Block(ctx context.Context, entry *blockindex.Entry) (*wire.MsgBlock, error)
		Undo(ctx context.Context, entry *blockindex.Entry) (*blockfile.UndoData, error)
	}
)
