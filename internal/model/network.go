package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network names a bitcoin network whose data directory the reader serves.
type Network string

var (
	Mainnet  Network = "mainnet"
	Testnet3 Network = "testnet3"
	Signet   Network = "signet"
	Regtest  Network = "regtest"
)

// ChainParams resolves the chain parameters for the network. The params
// carry the block file magic the store validates against.
func (n Network) ChainParams() (*chaincfg.Params, error) {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet3:
		return &chaincfg.TestNet3Params, nil
	case Signet:
		return &chaincfg.SigNetParams, nil
	case Regtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", n)
	}
}

func (n Network) String() string {
	return string(n)
}
