package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// LocalChainID is the chain ID of the in-process chain
const LocalChainID = 1337

// DevAccountBalance is the genesis balance of every local account
var DevAccountBalance = new(big.Int).Mul(big.NewInt(10_000), big.NewInt(params.Ether))

// LocalChain is an in-process chain that mines a block for every transaction
type LocalChain struct {
	sim    *simulated.Backend
	client *autoMiner
}

// NewLocalChain starts a chain with each hex key in accounts funded at genesis
func NewLocalChain(accounts []string) (*LocalChain, error) {
	alloc := types.GenesisAlloc{}
	for i, hexKey := range accounts {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid dev account %d", i)
		}
		alloc[crypto.PubkeyToAddress(key.PublicKey)] = types.Account{Balance: new(big.Int).Set(DevAccountBalance)}
	}

	sim := simulated.NewBackend(alloc)
	return &LocalChain{
		sim:    sim,
		client: &autoMiner{Client: sim.Client(), commit: sim.Commit},
	}, nil
}

// Backend returns the chain's RPC surface
func (l *LocalChain) Backend() Backend {
	return l.client
}

// Mine seals a block with any pending transactions
func (l *LocalChain) Mine() common.Hash {
	l.client.mu.Lock()
	defer l.client.mu.Unlock()
	return l.sim.Commit()
}

// Close stops the chain
func (l *LocalChain) Close() error {
	return l.sim.Close()
}

// autoMiner seals a block right after each accepted transaction
type autoMiner struct {
	simulated.Client

	mu     sync.Mutex
	commit func() common.Hash
}

func (a *autoMiner) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	a.commit()
	return nil
}
