package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Simple mock implementation for testing
type mockVerifier struct {
	err      error
	network  *config.Network
	artifact *domain.Artifact
	address  common.Address
	calls    int
}

func (m *mockVerifier) Verify(ctx context.Context, network *config.Network, artifact *domain.Artifact, address common.Address) error {
	m.calls++
	m.network = network
	m.artifact = artifact
	m.address = address
	return m.err
}

func newVerifyDeployment(network *config.Network, client *mockClient, verifier *mockVerifier) *VerifyDeployment {
	return NewVerifyDeployment(
		&config.RuntimeConfig{Network: network, Contract: "PiggyWatt"},
		&mockArtifacts{},
		&mockConnector{client: client},
		verifier,
		NopProgress{},
		discardLogger(),
	)
}

func TestVerifyDeployment_Success(t *testing.T) {
	network := testNetwork("opbnb_testnet")
	network.Explorer.BrowserURL = "https://opbnb-testnet.bscscan.com"
	verifier := &mockVerifier{}

	result, err := newVerifyDeployment(network, newMockClient(5611), verifier).Run(context.Background(), tokenAddr)
	require.NoError(t, err)

	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, tokenAddr, verifier.address)
	assert.Equal(t, "PiggyWatt", verifier.artifact.Name)
	assert.Equal(t, "opBNBTestnet", result.Explorer)
	assert.Equal(t, "https://opbnb-testnet.bscscan.com/address/"+tokenAddr.Hex(), result.ExplorerURL)
}

func TestVerifyDeployment_Rejections(t *testing.T) {
	t.Run("local network", func(t *testing.T) {
		verifier := &mockVerifier{}
		_, err := newVerifyDeployment(testNetwork("hardhat"), newMockClient(1337), verifier).Run(context.Background(), tokenAddr)
		assert.ErrorIs(t, err, domain.ErrLocalNetwork)
		assert.Zero(t, verifier.calls)
	})

	t.Run("missing api key", func(t *testing.T) {
		network := testNetwork("opbnb_mainnet")
		network.Explorer.APIKey = ""
		verifier := &mockVerifier{}
		_, err := newVerifyDeployment(network, newMockClient(204), verifier).Run(context.Background(), tokenAddr)
		assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
		assert.Zero(t, verifier.calls)
	})

	t.Run("no code", func(t *testing.T) {
		client := newMockClient(5611)
		client.code = nil
		verifier := &mockVerifier{}
		_, err := newVerifyDeployment(testNetwork("opbnb_testnet"), client, verifier).Run(context.Background(), tokenAddr)
		assert.ErrorIs(t, err, domain.ErrNoCode)
		assert.Zero(t, verifier.calls)
	})

	t.Run("explorer failure", func(t *testing.T) {
		verifier := &mockVerifier{err: errors.New("Invalid API Key")}
		_, err := newVerifyDeployment(testNetwork("opbnb_testnet"), newMockClient(5611), verifier).Run(context.Background(), tokenAddr)
		assert.ErrorContains(t, err, "verification failed: Invalid API Key")
	})
}
