package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 ")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), addr)

	for _, input := range []string{"", "0x123", "not-an-address", "0x0000000000000000000000000000000000000000"} {
		_, err := ParseAddress(input)
		assert.ErrorIs(t, err, ErrInvalidAddress, input)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("777")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(777), amount)

	huge, err := ParseAmount("1000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000", huge.String())

	for _, input := range []string{"0", "-5", "1.5", "abc", ""} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, input)
	}
}

func TestTransferKinds(t *testing.T) {
	a := common.HexToAddress("0x01")

	mint := Transfer{To: a, Value: big.NewInt(1)}
	assert.True(t, mint.IsMint())
	assert.False(t, mint.IsBurn())

	burn := Transfer{From: a, Value: big.NewInt(1)}
	assert.True(t, burn.IsBurn())
	assert.False(t, burn.IsMint())
}

func TestBalanceChangeDelta(t *testing.T) {
	c := &BalanceChange{BalanceBefore: big.NewInt(100), BalanceAfter: big.NewInt(50)}
	assert.Equal(t, big.NewInt(-50), c.Delta())
}
