//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/piggywatt/pgw-cli/internal/adapters"
	"github.com/piggywatt/pgw-cli/internal/config"
	"github.com/piggywatt/pgw-cli/internal/logging"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployToken,
		usecase.NewManageToken,
		usecase.NewIssuePoints,
		usecase.NewInspectToken,
		usecase.NewVerifyDeployment,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
