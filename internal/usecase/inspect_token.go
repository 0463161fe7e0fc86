package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// InspectToken re-reads a deployed token's metadata, e.g. after a failed introspection step
type InspectToken struct {
	cfg       *config.RuntimeConfig
	connector ChainConnector
	progress  ProgressSink
	log       *slog.Logger
}

// NewInspectToken creates a new InspectToken use case
func NewInspectToken(cfg *config.RuntimeConfig, connector ChainConnector, progress ProgressSink, log *slog.Logger) *InspectToken {
	return &InspectToken{
		cfg:       cfg,
		connector: connector,
		progress:  progress,
		log:       log.With("component", "InspectToken"),
	}
}

// Run reads name, symbol, decimals, owner and totalSupply of the token at address
func (uc *InspectToken) Run(ctx context.Context, address common.Address) (*domain.TokenInfo, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnecting, Message: "Connecting to " + uc.cfg.Network.Name, Spinner: true})
	session, err := openTokenSession(ctx, uc.cfg.Network, nil, uc.connector, address, false)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageIntrospecting, Message: "Reading contract information", Spinner: true})
	token := session.token
	info := &domain.TokenInfo{
		Address: address,
		ChainID: session.client.ChainID(),
	}

	if info.Token.Name, err = token.Name(ctx); err != nil {
		return nil, introspectionError("name", address, err)
	}
	if info.Token.Symbol, err = token.Symbol(ctx); err != nil {
		return nil, introspectionError("symbol", address, err)
	}
	if info.Token.Decimals, err = token.Decimals(ctx); err != nil {
		return nil, introspectionError("decimals", address, err)
	}
	if info.Owner, err = token.Owner(ctx); err != nil {
		return nil, introspectionError("owner", address, err)
	}
	if info.TotalSupply, err = token.TotalSupply(ctx); err != nil {
		return nil, introspectionError("totalSupply", address, err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	uc.log.Debug("token inspected", "address", address.Hex(), "symbol", info.Token.Symbol)
	return info, nil
}

func introspectionError(method string, address common.Address, err error) error {
	return &domain.IntrospectionError{Method: method, Address: address, Err: err}
}
