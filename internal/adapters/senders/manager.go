package senders

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// KeySigner signs with an in-memory private key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner parses a hex private key, with or without 0x
func NewKeySigner(hexKey string) (*KeySigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		// The key itself is never included in the error
		return nil, fmt.Errorf("invalid private key (expected 32 bytes hex)")
	}
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the signer's account
func (s *KeySigner) Address() common.Address {
	return s.address
}

// TransactOpts returns EIP-155 transaction options bound to ctx
func (s *KeySigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if chainID == nil {
		return nil, fmt.Errorf("chain ID is required")
	}
	opts := bind.NewKeyedTransactor(s.key, chainID)
	opts.Context = ctx
	return opts, nil
}

// Service resolves the signer configured for a network
type Service struct {
	log *slog.Logger
}

// NewService creates a new sender service
func NewService(log *slog.Logger) *Service {
	return &Service{log: log.With("component", "senders")}
}

// ResolveSigner returns the network's first account
func (s *Service) ResolveSigner(ctx context.Context, network *config.Network) (usecase.Signer, error) {
	if !network.HasSigner() {
		return nil, &domain.NoSignerError{Network: network.Name}
	}

	signer, err := NewKeySigner(network.Accounts[0])
	if err != nil {
		return nil, fmt.Errorf("signer for network %s: %w", network.Name, err)
	}

	s.log.Debug("resolved signer", "network", network.Name, "address", signer.Address().Hex())
	return signer, nil
}
