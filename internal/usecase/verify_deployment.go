package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// VerifyResult contains the result of verification
type VerifyResult struct {
	Network     string
	Explorer    string
	Address     common.Address
	Contract    string
	ExplorerURL string
}

// VerifyDeployment submits a deployed token's source to the network's block explorer
type VerifyDeployment struct {
	cfg       *config.RuntimeConfig
	artifacts ArtifactLoader
	connector ChainConnector
	verifier  ContractVerifier
	progress  ProgressSink
	log       *slog.Logger
}

// NewVerifyDeployment creates a new verify deployment use case
func NewVerifyDeployment(
	cfg *config.RuntimeConfig,
	artifacts ArtifactLoader,
	connector ChainConnector,
	verifier ContractVerifier,
	progress ProgressSink,
	log *slog.Logger,
) *VerifyDeployment {
	return &VerifyDeployment{
		cfg:       cfg,
		artifacts: artifacts,
		connector: connector,
		verifier:  verifier,
		progress:  progress,
		log:       log.With("component", "VerifyDeployment"),
	}
}

// Run verifies the contract at address on the configured network
func (v *VerifyDeployment) Run(ctx context.Context, address common.Address) (*VerifyResult, error) {
	network := v.cfg.Network
	if network == nil {
		return nil, fmt.Errorf("no network selected")
	}
	if network.Local {
		return nil, fmt.Errorf("%w: %s has no block explorer", domain.ErrLocalNetwork, network.Name)
	}
	if network.Explorer.APIURL == "" {
		return nil, fmt.Errorf("network %s has no explorer configured", network.Name)
	}
	if network.Explorer.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if address == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero address", domain.ErrInvalidAddress)
	}

	artifact, err := v.artifacts.LoadArtifact(ctx, v.cfg.Contract)
	if err != nil {
		return nil, asCompileError(v.cfg.Contract, err)
	}

	v.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnecting, Message: "Checking deployment on " + network.Name, Spinner: true})
	client, err := v.connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	code, err := client.CodeAt(ctx, address)
	client.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrNoCode, address.Hex(), network.Name)
	}

	v.progress.OnProgress(ctx, ProgressEvent{Stage: StageTransacting, Message: "Submitting source to " + network.Explorer.Name, Spinner: true})
	if err := v.verifier.Verify(ctx, network, artifact, address); err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}
	v.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	v.log.Info("contract verified", "address", address.Hex(), "explorer", network.Explorer.Name)
	return &VerifyResult{
		Network:     network.Name,
		Explorer:    network.Explorer.Name,
		Address:     address,
		Contract:    artifact.Name,
		ExplorerURL: network.AddressURL(address.Hex()),
	}, nil
}
