package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// Compiler runs the external build step
type Compiler interface {
	Build(ctx context.Context) error
}

// ArtifactLoader reads compiled contracts from the build output
type ArtifactLoader interface {
	LoadArtifact(ctx context.Context, name string) (*domain.Artifact, error)
}

// Signer is an identity able to authorize transactions
type Signer interface {
	Address() common.Address
	TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

// SignerResolver obtains the configured identity for a network
type SignerResolver interface {
	ResolveSigner(ctx context.Context, network *config.Network) (Signer, error)
}

// ChainConnector opens a client for a network
type ChainConnector interface {
	Connect(ctx context.Context, network *config.Network) (ChainClient, error)
}

// ChainClient is a connection to a single, chain-ID-verified network
type ChainClient interface {
	ChainID() uint64
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address) ([]byte, error)
	Deploy(ctx context.Context, signer Signer, artifact *domain.Artifact) (common.Address, common.Hash, error)
	WaitForConfirmations(ctx context.Context, txHash common.Hash, confirmations uint64) (*domain.TxReceipt, error)
	// Token binds the token at address. signer may be nil for read-only use.
	Token(address common.Address, signer Signer) TokenContract
	Close()
}

// TokenContract is the PiggyWatt ABI surface pgw consumes.
// Transacting methods return once the transaction has the network's confirmations.
type TokenContract interface {
	Address() common.Address

	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	Owner(ctx context.Context) (common.Address, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)

	Mint(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error)
	Burn(ctx context.Context, from common.Address, amount *big.Int) (*domain.TxReceipt, error)
	IssuePoints(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error)
	BatchIssuePoints(ctx context.Context, recipients []common.Address, amounts []*big.Int) (*domain.TxReceipt, error)
}

// DeploymentConfirmer asks the operator before deploying to a mainnet profile
type DeploymentConfirmer interface {
	ConfirmDeployment(ctx context.Context, req *domain.DeploymentRequest, balance *big.Int) (bool, error)
}

// ContractVerifier submits contract source to the network's block explorer
type ContractVerifier interface {
	Verify(ctx context.Context, network *config.Network, artifact *domain.Artifact, address common.Address) error
}

// NetworkLister exposes the network profile table
type NetworkLister interface {
	Names() []string
	Resolve(name string) (*config.Network, error)
}

// GasRecorder collects gas used per operation when gas reporting is enabled
type GasRecorder interface {
	Record(operation string, gasUsed uint64)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the deployment process
type ExecutionStage string

const (
	StageCompiling        ExecutionStage = "Compiling"
	StageResolvingSigner  ExecutionStage = "Resolving signer"
	StageConnecting       ExecutionStage = "Connecting"
	StageAwaitingApproval ExecutionStage = "Awaiting approval"
	StageDeploying        ExecutionStage = "Deploying"
	StageConfirming       ExecutionStage = "Confirming"
	StageIntrospecting    ExecutionStage = "Introspecting"
	StageTransacting      ExecutionStage = "Transacting"
	StageCompleted        ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NopGas discards gas records
type NopGas struct{}

func (NopGas) Record(string, uint64) {}
