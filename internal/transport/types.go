package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainReader interface {
		Tip() (*blockindex.Entry, error)
		ByHeight(height int32) (*blockindex.Entry, error)
		ByHash(hash *chainhash.Hash) (*blockindex.Entry, error)
		IsOnActiveChain(entry *blockindex.Entry) (bool, error)
		Status() (reader.SyncStatus, error)
		HeaderHeight() (int32, error)
		ChainHeight() (int32, error)
		Refresh(ctx context.Context) error
	}
)
