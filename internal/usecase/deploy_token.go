package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// DeployToken compiles, deploys and introspects the token contract on the configured network.
// Every step runs once, in order; the first failure ends the run. Re-running deploys a new instance.
type DeployToken struct {
	cfg       *config.RuntimeConfig
	compiler  Compiler
	artifacts ArtifactLoader
	signers   SignerResolver
	connector ChainConnector
	confirmer DeploymentConfirmer
	gas       GasRecorder
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployToken creates a new DeployToken use case
func NewDeployToken(
	cfg *config.RuntimeConfig,
	compiler Compiler,
	artifacts ArtifactLoader,
	signers SignerResolver,
	connector ChainConnector,
	confirmer DeploymentConfirmer,
	gas GasRecorder,
	progress ProgressSink,
	log *slog.Logger,
) *DeployToken {
	return &DeployToken{
		cfg:       cfg,
		compiler:  compiler,
		artifacts: artifacts,
		signers:   signers,
		connector: connector,
		confirmer: confirmer,
		gas:       gas,
		progress:  progress,
		log:       log.With("component", "DeployToken"),
	}
}

// Run executes the deployment
func (uc *DeployToken) Run(ctx context.Context) (*domain.DeploymentResult, error) {
	network := uc.cfg.Network
	if network == nil {
		return nil, fmt.Errorf("no network selected")
	}

	result := &domain.DeploymentResult{
		Network:      network.Name,
		ChainID:      network.ChainID,
		NativeSymbol: network.NativeSymbol,
	}

	// Compile
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompiling, Message: "Compiling contracts", Spinner: true})
	artifact, err := uc.compile(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve signer
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolvingSigner, Message: "Resolving signer"})
	if !network.HasSigner() {
		return nil, &domain.NoSignerError{Network: network.Name}
	}
	signer, err := uc.signers.ResolveSigner(ctx, network)
	if err != nil {
		return nil, err
	}
	result.Deployer = signer.Address()
	uc.log.Debug("signer resolved", "address", result.Deployer.Hex())

	// Connect and check balance
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnecting, Message: "Connecting to " + network.Name, Spinner: true})
	client, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageConnect, Err: err}
	}
	defer client.Close()

	balance, err := client.BalanceAt(ctx, result.Deployer)
	if err != nil {
		uc.log.Warn("failed to read deployer balance", "address", result.Deployer.Hex(), "error", err)
	} else {
		result.DeployerBalance = balance
	}

	if network.Mainnet {
		// The prompt needs the terminal to itself
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageAwaitingApproval, Message: "Waiting for mainnet confirmation"})
		req := &domain.DeploymentRequest{Network: network, Signer: result.Deployer, Artifact: artifact}
		ok, err := uc.confirmer.ConfirmDeployment(ctx, req, balance)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrDeploymentAborted
		}
	}

	// Deploy
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDeploying, Message: "Deploying " + artifact.Name, Spinner: true})
	address, txHash, err := client.Deploy(ctx, signer, artifact)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageSubmit, TxHash: txHash, Err: err}
	}
	result.Address = address
	result.TxHash = txHash
	uc.log.Info("deployment transaction submitted", "tx", txHash.Hex(), "address", address.Hex())

	// Confirm
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %d confirmation(s)", network.Confirmations),
		Spinner: true,
	})
	receipt, err := client.WaitForConfirmations(ctx, txHash, network.Confirmations)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageConfirm, TxHash: txHash, Err: err}
	}
	result.BlockNumber = receipt.BlockNumber
	result.GasUsed = receipt.GasUsed
	uc.gas.Record("deploy "+artifact.Name, receipt.GasUsed)

	// Introspect
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageIntrospecting, Message: "Reading contract information", Spinner: true})
	if err := uc.introspect(ctx, client.Token(address, signer), result); err != nil {
		return nil, err
	}

	result.VerifyCommand = domain.VerifyCommand(network.Name, address)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	return result, nil
}

// compile runs the build and loads the artifact; every failure is a CompileError
func (uc *DeployToken) compile(ctx context.Context) (*domain.Artifact, error) {
	if err := uc.compiler.Build(ctx); err != nil {
		return nil, asCompileError(uc.cfg.Contract, err)
	}

	artifact, err := uc.artifacts.LoadArtifact(ctx, uc.cfg.Contract)
	if err != nil {
		return nil, asCompileError(uc.cfg.Contract, err)
	}
	if len(artifact.Bytecode) == 0 {
		return nil, &domain.CompileError{Contract: uc.cfg.Contract, Err: errors.New("artifact has no bytecode (abstract contract or interface?)")}
	}

	return artifact, nil
}

// introspect reads name, symbol, decimals and owner, one call at a time
func (uc *DeployToken) introspect(ctx context.Context, token TokenContract, result *domain.DeploymentResult) error {
	wrap := func(method string, err error) error {
		return &domain.IntrospectionError{Method: method, Address: result.Address, TxHash: result.TxHash, Err: err}
	}

	name, err := token.Name(ctx)
	if err != nil {
		return wrap("name", err)
	}
	result.Token.Name = name

	symbol, err := token.Symbol(ctx)
	if err != nil {
		return wrap("symbol", err)
	}
	result.Token.Symbol = symbol

	decimals, err := token.Decimals(ctx)
	if err != nil {
		return wrap("decimals", err)
	}
	result.Token.Decimals = decimals

	owner, err := token.Owner(ctx)
	if err != nil {
		return wrap("owner", err)
	}
	result.Owner = owner

	return nil
}

func asCompileError(contract string, err error) error {
	var compileErr *domain.CompileError
	if errors.As(err, &compileErr) {
		return err
	}
	return &domain.CompileError{Contract: contract, Err: err}
}
