package app

import (
	"log/slog"

	"github.com/piggywatt/pgw-cli/internal/adapters/blockchain"
	"github.com/piggywatt/pgw-cli/internal/adapters/gasreport"
	"github.com/piggywatt/pgw-cli/internal/adapters/progress"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployToken      *usecase.DeployToken
	ManageToken      *usecase.ManageToken
	IssuePoints      *usecase.IssuePoints
	InspectToken     *usecase.InspectToken
	VerifyDeployment *usecase.VerifyDeployment
	ListNetworks     *usecase.ListNetworks

	// Adapters the CLI needs after a use case returns
	Progress  progress.Reporter
	Gas       *gasreport.Collector
	Connector *blockchain.Connector
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployToken *usecase.DeployToken,
	manageToken *usecase.ManageToken,
	issuePoints *usecase.IssuePoints,
	inspectToken *usecase.InspectToken,
	verifyDeployment *usecase.VerifyDeployment,
	listNetworks *usecase.ListNetworks,
	progress progress.Reporter,
	gas *gasreport.Collector,
	connector *blockchain.Connector,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		DeployToken:      deployToken,
		ManageToken:      manageToken,
		IssuePoints:      issuePoints,
		InspectToken:     inspectToken,
		VerifyDeployment: verifyDeployment,
		ListNetworks:     listNetworks,
		Progress:         progress,
		Gas:              gas,
		Connector:        connector,
	}, nil
}

// Close stops the spinner and releases the local chain
func (a *App) Close() error {
	a.Progress.Stop()
	return a.Connector.Close()
}
