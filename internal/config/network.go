package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

const (
	// LocalNetwork is the in-process simulated chain, used when no network is given
	LocalNetwork = "hardhat"

	// NetworksFile holds optional profile overrides in the project root
	NetworksFile = "networks.yaml"

	envPrivateKey  = "PRIVATE_KEY"
	envExplorerKey = "OPBNB_API_KEY"
)

// DevAccounts are the well-known development keys funded on the local chain.
// The first one is the default deployer and token owner.
var DevAccounts = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
}

// DefaultNetworks returns the built-in profile table
func DefaultNetworks() map[string]*config.Network {
	return map[string]*config.Network{
		LocalNetwork: {
			Name:          LocalNetwork,
			ChainID:       1337,
			Timeout:       config.DefaultNetworkTimeout,
			Confirmations: 1,
			Local:         true,
			NativeSymbol:  "ETH",
		},
		"opbnb_testnet": {
			Name:          "opbnb_testnet",
			RPCURL:        "https://opbnb-testnet-rpc.bnbchain.org",
			ChainID:       5611,
			Timeout:       config.DefaultNetworkTimeout,
			Confirmations: 1,
			NativeSymbol:  "BNB",
			Explorer: config.Explorer{
				Name:       "opBNBTestnet",
				APIURL:     "https://api-opbnb-testnet.bscscan.com/api",
				BrowserURL: "https://opbnb-testnet.bscscan.com",
			},
		},
		"opbnb_mainnet": {
			Name:          "opbnb_mainnet",
			RPCURL:        "https://opbnb-mainnet-rpc.bnbchain.org",
			ChainID:       204,
			Timeout:       config.DefaultNetworkTimeout,
			Confirmations: 2,
			Mainnet:       true,
			NativeSymbol:  "BNB",
			Explorer: config.Explorer{
				Name:       "opBNB",
				APIURL:     "https://api-opbnb.bscscan.com/api",
				BrowserURL: "https://opbnb.bscscan.com",
			},
		},
	}
}

// networkAliases maps alternative names onto profile names
var networkAliases = map[string]string{
	"local":     LocalNetwork,
	"localhost": LocalNetwork,
}

// networkOverride is one entry of networks.yaml. Nil fields keep the built-in value.
type networkOverride struct {
	URL           *string       `yaml:"url"`
	ChainID       *uint64       `yaml:"chain_id"`
	Timeout       *timeoutValue `yaml:"timeout"`
	Confirmations *uint64       `yaml:"confirmations"`
	Mainnet       *bool         `yaml:"mainnet"`
	NativeSymbol  *string       `yaml:"native_symbol"`
	Explorer      *struct {
		Name       string `yaml:"name"`
		APIURL     string `yaml:"api_url"`
		BrowserURL string `yaml:"browser_url"`
	} `yaml:"explorer"`
}

// timeoutValue accepts a duration string ("90s") or an integer number of milliseconds
type timeoutValue time.Duration

func (d *timeoutValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!int" {
		var ms int64
		if err := node.Decode(&ms); err != nil {
			return err
		}
		if ms < 0 {
			return fmt.Errorf("line %d: timeout must not be negative", node.Line)
		}
		*d = timeoutValue(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid timeout %q (use milliseconds or a duration like 60s)", node.Line, raw)
	}
	*d = timeoutValue(parsed)
	return nil
}

type networksFile struct {
	Networks map[string]networkOverride `yaml:"networks"`
}

// NetworkTable resolves network names to fully populated profiles
type NetworkTable struct {
	networks map[string]*config.Network
	lookup   func(string) (string, bool)
}

// NewNetworkTable creates a table from the built-in profiles and networks.yaml, if present
func NewNetworkTable(projectRoot string) (*NetworkTable, error) {
	t := &NetworkTable{
		networks: DefaultNetworks(),
		lookup:   os.LookupEnv,
	}

	if projectRoot == "" {
		return t, nil
	}

	data, err := os.ReadFile(filepath.Join(projectRoot, NetworksFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", NetworksFile, err)
	}

	if err := t.applyOverrides(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", NetworksFile, err)
	}
	return t, nil
}

// applyOverrides merges a networks.yaml document into the table
func (t *NetworkTable) applyOverrides(data []byte) error {
	var file networksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	for name, o := range file.Networks {
		network, ok := t.networks[name]
		if !ok {
			if o.URL == nil || o.ChainID == nil {
				return fmt.Errorf("network %s: url and chain_id are required for new networks", name)
			}
			network = &config.Network{
				Name:          name,
				Timeout:       config.DefaultNetworkTimeout,
				Confirmations: 1,
				NativeSymbol:  "BNB",
			}
			t.networks[name] = network
		}

		// A local profile with a URL is dialed and keeps the dev accounts
		if o.URL != nil {
			network.RPCURL = *o.URL
		}
		if o.ChainID != nil {
			network.ChainID = *o.ChainID
		}
		if o.Timeout != nil {
			network.Timeout = time.Duration(*o.Timeout)
		}
		if o.Confirmations != nil {
			network.Confirmations = *o.Confirmations
		}
		if o.Mainnet != nil {
			network.Mainnet = *o.Mainnet
		}
		if o.NativeSymbol != nil {
			network.NativeSymbol = *o.NativeSymbol
		}
		if o.Explorer != nil {
			network.Explorer.Name = o.Explorer.Name
			network.Explorer.APIURL = o.Explorer.APIURL
			network.Explorer.BrowserURL = o.Explorer.BrowserURL
		}
		if network.Confirmations == 0 {
			network.Confirmations = 1
		}
	}

	return nil
}

// Names returns all profile names, sorted
func (t *NetworkTable) Names() []string {
	names := make([]string, 0, len(t.networks))
	for name := range t.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a copy of the named profile with signer accounts and explorer key applied
func (t *NetworkTable) Resolve(name string) (*config.Network, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		key = LocalNetwork
	}
	if alias, ok := networkAliases[strings.ToLower(key)]; ok {
		key = alias
	}

	profile, ok := t.networks[key]
	if !ok {
		profile, ok = t.networks[strings.ToLower(key)]
	}
	if !ok {
		if suggestion := t.suggest(key); suggestion != "" {
			return nil, fmt.Errorf("%w: %s (did you mean %s?)", domain.ErrNetworkNotFound, name, suggestion)
		}
		return nil, fmt.Errorf("%w: %s (available: %s)", domain.ErrNetworkNotFound, name, strings.Join(t.Names(), ", "))
	}

	network := *profile
	network.Accounts = nil

	rpcURL, err := t.resolveRPCURL(&network)
	if err != nil {
		return nil, err
	}
	network.RPCURL = rpcURL

	if network.Local {
		network.Accounts = append([]string(nil), DevAccounts...)
	} else if pk, ok := t.lookup(envPrivateKey); ok && strings.TrimSpace(pk) != "" {
		network.Accounts = []string{strings.TrimSpace(pk)}
	}

	if apiKey, ok := t.lookup(envExplorerKey); ok {
		network.Explorer.APIKey = apiKey
	}

	return &network, nil
}

// suggest returns the closest profile name to input, or ""
func (t *NetworkTable) suggest(input string) string {
	matches := fuzzy.Find(input, t.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
