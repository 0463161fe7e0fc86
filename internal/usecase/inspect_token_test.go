package usecase

import (
	"context"
	"math/big"
	"testing"

	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	t.Run("fresh deployment", func(t *testing.T) {
		client := newMockClient(5611)
		uc := NewInspectToken(&config.RuntimeConfig{Network: testNetwork("opbnb_testnet")}, &mockConnector{client: client}, NopProgress{}, discardLogger())

		info, err := uc.Run(context.Background(), tokenAddr)
		require.NoError(t, err)

		assert.Equal(t, tokenAddr, info.Address)
		assert.Equal(t, uint64(5611), info.ChainID)
		assert.Equal(t, "Piggy Watt", info.Token.Name)
		assert.Equal(t, "PIGGY", info.Token.Symbol)
		assert.Equal(t, uint8(0), info.Token.Decimals)
		assert.Equal(t, ownerAddr, info.Owner)
		assert.Equal(t, big.NewInt(0), info.TotalSupply)
		assert.True(t, client.closed)
	})

	t.Run("no signer needed", func(t *testing.T) {
		network := testNetwork("opbnb_testnet")
		network.Accounts = nil
		uc := NewInspectToken(&config.RuntimeConfig{Network: network}, &mockConnector{client: newMockClient(5611)}, NopProgress{}, discardLogger())

		_, err := uc.Run(context.Background(), tokenAddr)
		assert.NoError(t, err)
	})

	t.Run("no code", func(t *testing.T) {
		client := newMockClient(5611)
		client.code = nil
		uc := NewInspectToken(&config.RuntimeConfig{Network: testNetwork("opbnb_testnet")}, &mockConnector{client: client}, NopProgress{}, discardLogger())

		_, err := uc.Run(context.Background(), tokenAddr)
		assert.ErrorIs(t, err, domain.ErrNoCode)
	})

	t.Run("read failure", func(t *testing.T) {
		client := newMockClient(5611)
		client.ledger.failRead = "totalSupply"
		uc := NewInspectToken(&config.RuntimeConfig{Network: testNetwork("opbnb_testnet")}, &mockConnector{client: client}, NopProgress{}, discardLogger())

		_, err := uc.Run(context.Background(), tokenAddr)
		var introErr *domain.IntrospectionError
		require.ErrorAs(t, err, &introErr)
		assert.Equal(t, "totalSupply", introErr.Method)
		assert.NotContains(t, err.Error(), "deployed in tx")
	})
}
