package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/piggywatt/pgw-cli/internal/adapters/token"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// DefaultPollInterval is how often receipts and the chain head are polled
const DefaultPollInterval = time.Second

// Backend is the RPC surface the client needs. Both *ethclient.Client
// and simulated.Client satisfy it.
type Backend interface {
	bind.ContractBackend
	ethereum.ChainIDReader
	ethereum.BlockNumberReader
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client is a connection to one network whose chain ID has been checked
type Client struct {
	backend      Backend
	network      *config.Network
	chainID      *big.Int
	pollInterval time.Duration
	closer       func()
	log          *slog.Logger
}

func newClient(backend Backend, network *config.Network, closer func(), log *slog.Logger) *Client {
	if closer == nil {
		closer = func() {}
	}
	return &Client{
		backend:      backend,
		network:      network,
		chainID:      new(big.Int).SetUint64(network.ChainID),
		pollInterval: DefaultPollInterval,
		closer:       closer,
		log:          log,
	}
}

// withTimeout bounds a network call by the profile timeout
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.network.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.network.Timeout)
}

// ChainID returns the verified chain ID
func (c *Client) ChainID() uint64 {
	return c.chainID.Uint64()
}

// BalanceAt returns the native balance of account at the latest block
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.backend.BalanceAt(ctx, account, nil)
}

// CodeAt returns the runtime code at account
func (c *Client) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.backend.CodeAt(ctx, account, nil)
}

// Deploy submits the creation transaction for artifact. It does not wait for it to be mined.
func (c *Client) Deploy(ctx context.Context, signer usecase.Signer, artifact *domain.Artifact) (common.Address, common.Hash, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	opts, err := signer.TransactOpts(ctx, c.chainID)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}

	address, tx, err := bind.DeployContract(opts, artifact.Bytecode, c.backend, nil)
	if err != nil {
		var txHash common.Hash
		if tx != nil {
			txHash = tx.Hash()
		}
		return common.Address{}, txHash, err
	}

	c.log.Debug("creation transaction sent", "tx", tx.Hash().Hex(), "nonce", tx.Nonce(), "gas", tx.Gas())
	return address, tx.Hash(), nil
}

// WaitForConfirmations waits for txHash and returns its receipt
func (c *Client) WaitForConfirmations(ctx context.Context, txHash common.Hash, confirmations uint64) (*domain.TxReceipt, error) {
	receipt, err := c.WaitReceipt(ctx, txHash, confirmations)
	if err != nil {
		return nil, err
	}
	return &domain.TxReceipt{
		Hash:        receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// WaitReceipt polls until txHash is mined and head >= block + confirmations - 1.
// A failed receipt returns ErrTxReverted. Lookup errors (not found, indexing in
// progress, dropped connections) keep the wait going; only the profile timeout ends it.
func (c *Client) WaitReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*types.Receipt, error) {
	if confirmations == 0 {
		confirmations = 1
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return nil, fmt.Errorf("%w: %s in block %d", domain.ErrTxReverted, txHash.Hex(), receipt.BlockNumber.Uint64())
			}
			head, err := c.backend.BlockNumber(ctx)
			if err != nil {
				lastErr = err
				c.log.Debug("block number not available", "tx", txHash.Hex(), "error", err)
				break
			}
			if head >= receipt.BlockNumber.Uint64()+confirmations-1 {
				return receipt, nil
			}
			c.log.Debug("waiting for confirmations", "tx", txHash.Hex(), "block", receipt.BlockNumber.Uint64(), "head", head)
		case errors.Is(err, ethereum.NotFound):
			// Pending
		case ctx.Err() == nil:
			lastErr = err
			c.log.Debug("receipt not available yet", "tx", txHash.Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("timeout waiting for transaction %s (last error: %v): %w", txHash.Hex(), lastErr, ctx.Err())
			}
			return nil, fmt.Errorf("timeout waiting for transaction %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// Token binds the token at address, read-only when signer is nil
func (c *Client) Token(address common.Address, signer usecase.Signer) usecase.TokenContract {
	return token.New(address, token.Options{
		Backend:       c.backend,
		Waiter:        c,
		ChainID:       c.chainID.Uint64(),
		Confirmations: c.network.Confirmations,
		Timeout:       c.network.Timeout,
		Signer:        signer,
	})
}

// Close releases the connection
func (c *Client) Close() {
	c.closer()
}

var (
	_ usecase.ChainClient = (*Client)(nil)
	_ token.ReceiptWaiter = (*Client)(nil)
)
