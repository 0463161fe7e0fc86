package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUnits(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	halfEther, _ := new(big.Int).SetString("500000000000000000", 10)
	tiny := big.NewInt(1)

	tests := []struct {
		name     string
		amount   *big.Int
		decimals int
		expected string
	}{
		{name: "nil", amount: nil, decimals: 18, expected: "unknown"},
		{name: "zero", amount: big.NewInt(0), decimals: 18, expected: "0"},
		{name: "one ether", amount: oneEther, decimals: 18, expected: "1"},
		{name: "half ether", amount: halfEther, decimals: 18, expected: "0.5"},
		{name: "one wei", amount: tiny, decimals: 18, expected: "0.000000000000000001"},
		{name: "negative", amount: new(big.Int).Neg(halfEther), decimals: 18, expected: "-0.5"},
		{name: "zero decimals", amount: big.NewInt(7770), decimals: 0, expected: "7770"},
		{name: "two decimals", amount: big.NewInt(12345), decimals: 2, expected: "123.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUnits(tt.amount, tt.decimals))
		})
	}
}

func TestVerifyCommand(t *testing.T) {
	cmd := VerifyCommand("opbnb_testnet", [20]byte{0x01})
	assert.Equal(t, "pgw verify --network opbnb_testnet 0x0100000000000000000000000000000000000000", cmd)
}
