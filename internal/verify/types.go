package verify

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainView interface {
		ChainHeight() (int32, error)
		ByHeight(height int32) (*blockindex.Entry, error)
	}
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
	}
)
