package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// DialFunc opens an RPC backend and returns a function releasing it
type DialFunc func(ctx context.Context, rpcURL string) (Backend, func(), error)

// DialRPC dials rpcURL with ethclient
func DialRPC(ctx context.Context, rpcURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// Connector opens chain clients and checks each node reports the profile's chain ID.
// The local profile is served by one in-process chain shared for the life of the Connector.
type Connector struct {
	log  *slog.Logger
	dial DialFunc

	mu    sync.Mutex
	local *LocalChain
}

// NewConnector creates a connector that dials with ethclient
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{
		log:  log.With("component", "blockchain"),
		dial: DialRPC,
	}
}

// Connect opens a client for network
func (c *Connector) Connect(ctx context.Context, network *config.Network) (usecase.ChainClient, error) {
	if network == nil {
		return nil, fmt.Errorf("no network selected")
	}

	var (
		backend Backend
		closer  func()
	)

	if network.Local && network.RPCURL == "" {
		local, err := c.localChain(network)
		if err != nil {
			return nil, err
		}
		backend = local.Backend()
	} else {
		if network.RPCURL == "" {
			return nil, fmt.Errorf("network %s has no RPC URL", network.Name)
		}

		dialCtx, cancel := timeoutContext(ctx, network)
		defer cancel()

		var err error
		backend, closer, err = c.dial(dialCtx, network.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RPC: %w", err)
		}
	}

	client := newClient(backend, network, closer, c.log)
	if err := c.checkChainID(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	c.log.Debug("connected", "network", network.Name, "chain_id", network.ChainID, "local", network.Local)
	return client, nil
}

func (c *Connector) checkChainID(ctx context.Context, client *Client) error {
	ctx, cancel := client.withTimeout(ctx)
	defer cancel()

	reported, err := client.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if reported.Uint64() != client.network.ChainID {
		return fmt.Errorf("%w: network %s expects %d, node reports %d",
			domain.ErrChainIDMismatch, client.network.Name, client.network.ChainID, reported.Uint64())
	}
	return nil
}

// localChain starts the in-process chain on first use
func (c *Connector) localChain(network *config.Network) (*LocalChain, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.local == nil {
		local, err := NewLocalChain(network.Accounts)
		if err != nil {
			return nil, fmt.Errorf("failed to start local chain: %w", err)
		}
		c.local = local
		c.log.Debug("started local chain", "accounts", len(network.Accounts))
	}
	return c.local, nil
}

// Close stops the local chain if one was started
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.local == nil {
		return nil
	}
	err := c.local.Close()
	c.local = nil
	return err
}

func timeoutContext(ctx context.Context, network *config.Network) (context.Context, context.CancelFunc) {
	if network.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, network.Timeout)
}

var _ usecase.ChainConnector = (*Connector)(nil)
