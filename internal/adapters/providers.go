package adapters

import (
	"github.com/google/wire"
	"github.com/piggywatt/pgw-cli/internal/adapters/blockchain"
	"github.com/piggywatt/pgw-cli/internal/adapters/forge"
	"github.com/piggywatt/pgw-cli/internal/adapters/gasreport"
	"github.com/piggywatt/pgw-cli/internal/adapters/interactive"
	"github.com/piggywatt/pgw-cli/internal/adapters/progress"
	"github.com/piggywatt/pgw-cli/internal/adapters/senders"
	"github.com/piggywatt/pgw-cli/internal/adapters/verification"
	"github.com/piggywatt/pgw-cli/internal/config"
	domainconfig "github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// ProvideNetworkTable provides the network profile table for the project
func ProvideNetworkTable(cfg *domainconfig.RuntimeConfig) (*config.NetworkTable, error) {
	return config.NewNetworkTable(cfg.ProjectRoot)
}

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewForgeAdapter,
	wire.Bind(new(usecase.Compiler), new(*forge.ForgeAdapter)),

	forge.NewArtifactLoader,
	wire.Bind(new(usecase.ArtifactLoader), new(*forge.ArtifactLoader)),
)

// SignerSet provides signer resolution
var SignerSet = wire.NewSet(
	senders.NewService,
	wire.Bind(new(usecase.SignerResolver), new(*senders.Service)),
)

// BlockchainSet provides chain connectivity
var BlockchainSet = wire.NewSet(
	blockchain.NewConnector,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.Connector)),
)

// VerificationSet provides explorer verification
var VerificationSet = wire.NewSet(
	verification.NewForgeVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.ForgeVerifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.DeploymentConfirmer), new(*interactive.ConfirmAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideNetworkTable,
	wire.Bind(new(usecase.NetworkLister), new(*config.NetworkTable)),
)

// ReportingSet provides gas reporting and progress output
var ReportingSet = wire.NewSet(
	gasreport.NewCollector,
	wire.Bind(new(usecase.GasRecorder), new(*gasreport.Collector)),

	progress.NewReporter,
	wire.Bind(new(usecase.ProgressSink), new(progress.Reporter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ForgeSet,
	SignerSet,
	BlockchainSet,
	VerificationSet,
	InteractiveSet,
	ConfigSet,
	ReportingSet,
)
