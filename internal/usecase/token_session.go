package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// tokenSession is an open connection bound to one deployed token
type tokenSession struct {
	network *config.Network
	client  ChainClient
	token   TokenContract
	signer  Signer
}

// openTokenSession connects to the network and binds the token at address.
// With withSigner the owner identity is resolved first so that transacting calls can be made.
func openTokenSession(
	ctx context.Context,
	network *config.Network,
	signers SignerResolver,
	connector ChainConnector,
	address common.Address,
	withSigner bool,
) (*tokenSession, error) {
	if network == nil {
		return nil, fmt.Errorf("no network selected")
	}
	if address == (common.Address{}) {
		return nil, fmt.Errorf("%w: token address is the zero address", domain.ErrInvalidAddress)
	}

	var signer Signer
	if withSigner {
		if !network.HasSigner() {
			return nil, &domain.NoSignerError{Network: network.Name}
		}
		var err error
		signer, err = signers.ResolveSigner(ctx, network)
		if err != nil {
			return nil, err
		}
	}

	client, err := connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}

	code, err := client.CodeAt(ctx, address)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		client.Close()
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrNoCode, address.Hex(), network.Name)
	}

	return &tokenSession{
		network: network,
		client:  client,
		token:   client.Token(address, signer),
		signer:  signer,
	}, nil
}

func (s *tokenSession) Close() {
	s.client.Close()
}
