package config

import (
	"time"
)

// DefaultNetworkTimeout bounds every RPC call made against a network
const DefaultNetworkTimeout = 60 * time.Second

// Network represents a network profile
type Network struct {
	Name    string
	RPCURL  string
	ChainID uint64

	// Accounts holds hex private keys usable as signers. Empty means no signer.
	Accounts []string

	Timeout       time.Duration
	Confirmations uint64

	// Local marks the in-process simulated chain
	Local bool

	// Mainnet enables the interactive deployment confirmation
	Mainnet bool

	NativeSymbol string
	Explorer     Explorer
}

// Explorer describes the block explorer used for source verification
type Explorer struct {
	// Name is the explorer's network identifier (e.g. opBNBTestnet)
	Name       string
	APIURL     string
	BrowserURL string
	APIKey     string
}

// HasSigner reports whether at least one account is configured
func (n *Network) HasSigner() bool {
	return len(n.Accounts) > 0
}

// AddressURL returns the explorer page for an address, or "" when no explorer is known
func (n *Network) AddressURL(address string) string {
	if n.Explorer.BrowserURL == "" {
		return ""
	}
	return n.Explorer.BrowserURL + "/address/" + address
}

// TxURL returns the explorer page for a transaction, or "" when no explorer is known
func (n *Network) TxURL(hash string) string {
	if n.Explorer.BrowserURL == "" {
		return ""
	}
	return n.Explorer.BrowserURL + "/tx/" + hash
}
