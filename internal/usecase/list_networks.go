package usecase

import (
	"context"

	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	// Current is the network selected with --network
	Current string
}

// NetworkStatus represents one profile of the network table
type NetworkStatus struct {
	Name          string
	ChainID       uint64
	RPCURL        string
	Confirmations uint64
	Local         bool
	Mainnet       bool
	HasSigner     bool
	ExplorerURL   string
	Error         error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	lister  NetworkLister
	current string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(lister NetworkLister, cfg *config.RuntimeConfig) *ListNetworks {
	uc := &ListNetworks{lister: lister}
	if cfg.Network != nil {
		uc.current = cfg.Network.Name
	}
	return uc
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.lister.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		network, err := uc.lister.Resolve(name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = network.ChainID
			status.RPCURL = network.RPCURL
			status.Confirmations = network.Confirmations
			status.Local = network.Local
			status.Mainnet = network.Mainnet
			status.HasSigner = network.HasSigner()
			status.ExplorerURL = network.Explorer.BrowserURL
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}
