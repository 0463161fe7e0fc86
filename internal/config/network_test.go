package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, env map[string]string) *NetworkTable {
	t.Helper()
	table, err := NewNetworkTable("")
	require.NoError(t, err)
	table.lookup = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return table
}

func TestNetworkTable_DefaultProfiles(t *testing.T) {
	table := newTestTable(t, nil)

	tests := []struct {
		name          string
		chainID       uint64
		confirmations uint64
		local         bool
	}{
		{name: "hardhat", chainID: 1337, confirmations: 1, local: true},
		{name: "opbnb_testnet", chainID: 5611, confirmations: 1},
		{name: "opbnb_mainnet", chainID: 204, confirmations: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := table.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, network.Name)
			assert.Equal(t, tt.chainID, network.ChainID)
			assert.Equal(t, tt.confirmations, network.Confirmations)
			assert.Equal(t, tt.local, network.Local)
			assert.Equal(t, 60*time.Second, network.Timeout)
		})
	}

	assert.Equal(t, []string{"hardhat", "opbnb_mainnet", "opbnb_testnet"}, table.Names())
}

func TestNetworkTable_Signers(t *testing.T) {
	t.Run("remote network without PRIVATE_KEY has no signer", func(t *testing.T) {
		network, err := newTestTable(t, nil).Resolve("opbnb_testnet")
		require.NoError(t, err)
		assert.False(t, network.HasSigner())
		assert.Empty(t, network.Accounts)
	})

	t.Run("PRIVATE_KEY becomes the only account", func(t *testing.T) {
		network, err := newTestTable(t, map[string]string{"PRIVATE_KEY": " 0xabc "}).Resolve("opbnb_mainnet")
		require.NoError(t, err)
		assert.Equal(t, []string{"0xabc"}, network.Accounts)
	})

	t.Run("blank PRIVATE_KEY is ignored", func(t *testing.T) {
		network, err := newTestTable(t, map[string]string{"PRIVATE_KEY": "  "}).Resolve("opbnb_testnet")
		require.NoError(t, err)
		assert.False(t, network.HasSigner())
	})

	t.Run("local network always uses dev accounts", func(t *testing.T) {
		network, err := newTestTable(t, map[string]string{"PRIVATE_KEY": "0xabc"}).Resolve("hardhat")
		require.NoError(t, err)
		assert.Equal(t, DevAccounts, network.Accounts)
	})

	t.Run("resolve returns copies", func(t *testing.T) {
		table := newTestTable(t, nil)
		a, err := table.Resolve("hardhat")
		require.NoError(t, err)
		a.Accounts[0] = "mutated"
		a.ChainID = 1

		b, err := table.Resolve("hardhat")
		require.NoError(t, err)
		assert.Equal(t, DevAccounts[0], b.Accounts[0])
		assert.Equal(t, uint64(1337), b.ChainID)
	})
}

func TestNetworkTable_ExplorerKey(t *testing.T) {
	network, err := newTestTable(t, map[string]string{"OPBNB_API_KEY": "KEY"}).Resolve("opbnb_testnet")
	require.NoError(t, err)
	assert.Equal(t, "KEY", network.Explorer.APIKey)
	assert.Equal(t, "opBNBTestnet", network.Explorer.Name)
	assert.Equal(t, "https://opbnb-testnet.bscscan.com/address/0x1", network.AddressURL("0x1"))
}

func TestNetworkTable_Resolve(t *testing.T) {
	table := newTestTable(t, nil)

	t.Run("empty name selects local network", func(t *testing.T) {
		network, err := table.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, LocalNetwork, network.Name)
	})

	t.Run("aliases", func(t *testing.T) {
		for _, alias := range []string{"local", "localhost", "LOCAL"} {
			network, err := table.Resolve(alias)
			require.NoError(t, err)
			assert.Equal(t, LocalNetwork, network.Name)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		network, err := table.Resolve("OPBNB_TESTNET")
		require.NoError(t, err)
		assert.Equal(t, "opbnb_testnet", network.Name)
	})

	t.Run("unknown network suggests closest", func(t *testing.T) {
		_, err := table.Resolve("opbnb_test")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
		assert.Contains(t, err.Error(), "did you mean opbnb_testnet?")
	})

	t.Run("unknown network without match lists names", func(t *testing.T) {
		_, err := table.Resolve("sepolia")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
		assert.Contains(t, err.Error(), "available: hardhat, opbnb_mainnet, opbnb_testnet")
	})
}

func TestNewNetworkTable_Overrides(t *testing.T) {
	dir := t.TempDir()
	content := `networks:
  opbnb_testnet:
    url: https://my-node.example
    confirmations: 3
    timeout: 90s
  fork:
    url: http://127.0.0.1:8545
    chain_id: 5611
    explorer:
      name: opBNBTestnet
      api_url: https://api.example/api
      browser_url: https://explorer.example
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte(content), 0644))

	table, err := NewNetworkTable(dir)
	require.NoError(t, err)

	testnet, err := table.Resolve("opbnb_testnet")
	require.NoError(t, err)
	assert.Equal(t, "https://my-node.example", testnet.RPCURL)
	assert.Equal(t, uint64(3), testnet.Confirmations)
	assert.Equal(t, 90*time.Second, testnet.Timeout)
	assert.Equal(t, uint64(5611), testnet.ChainID)

	fork, err := table.Resolve("fork")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545", fork.RPCURL)
	assert.Equal(t, uint64(1), fork.Confirmations)
	assert.Equal(t, 60*time.Second, fork.Timeout)
	assert.Equal(t, "https://explorer.example", fork.Explorer.BrowserURL)
	assert.False(t, fork.Local)
}

func TestNewNetworkTable_LocalURLOverrideKeepsDevAccounts(t *testing.T) {
	dir := t.TempDir()
	content := "networks:\n  hardhat:\n    url: http://127.0.0.1:8545\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte(content), 0644))

	table, err := NewNetworkTable(dir)
	require.NoError(t, err)
	table.lookup = func(string) (string, bool) { return "", false }

	network, err := table.Resolve("hardhat")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545", network.RPCURL)
	assert.True(t, network.Local)
	assert.True(t, network.HasSigner())
	assert.Equal(t, DevAccounts, network.Accounts)
}

func TestNewNetworkTable_TimeoutForms(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    time.Duration
	}{
		{name: "milliseconds", timeout: "60000", want: 60 * time.Second},
		{name: "duration string", timeout: "90s", want: 90 * time.Second},
		{name: "quoted duration", timeout: `"1500ms"`, want: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			content := "networks:\n  opbnb_testnet:\n    timeout: " + tt.timeout + "\n"
			require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte(content), 0644))

			table, err := NewNetworkTable(dir)
			require.NoError(t, err)
			network, err := table.Resolve("opbnb_testnet")
			require.NoError(t, err)
			assert.Equal(t, tt.want, network.Timeout)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte("networks:\n  opbnb_testnet:\n    timeout: soon\n"), 0644))
		_, err := NewNetworkTable(dir)
		assert.ErrorContains(t, err, "invalid timeout")
	})
}

func TestNewNetworkTable_InvalidOverrides(t *testing.T) {
	t.Run("new network needs url and chain id", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte("networks:\n  fork:\n    url: http://x\n"), 0644))
		_, err := NewNetworkTable(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url and chain_id are required")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, NetworksFile), []byte("networks: [\n"), 0644))
		_, err := NewNetworkTable(dir)
		require.Error(t, err)
	})
}
