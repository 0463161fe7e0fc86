package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Transfer is a decoded Transfer(address,address,uint256) event
type Transfer struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

// TxReceipt is the confirmed outcome of a token transaction
type TxReceipt struct {
	Hash        common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Transfers   []Transfer
}

// IsMint reports whether the transfer originates from the zero address
func (t Transfer) IsMint() bool {
	return t.From == (common.Address{})
}

// IsBurn reports whether the transfer goes to the zero address
func (t Transfer) IsBurn() bool {
	return t.To == (common.Address{})
}

// TokenInfo is a snapshot of a deployed token read back from the chain
type TokenInfo struct {
	Address     common.Address
	ChainID     uint64
	Token       TokenMetadata
	Owner       common.Address
	TotalSupply *big.Int
}

// BalanceChange is the result of a single owner operation on the token
type BalanceChange struct {
	Operation        string
	Account          common.Address
	Receipt          *TxReceipt
	BalanceBefore    *big.Int
	BalanceAfter     *big.Int
	TotalSupplyAfter *big.Int
}

// Delta returns BalanceAfter - BalanceBefore
func (c *BalanceChange) Delta() *big.Int {
	return new(big.Int).Sub(c.BalanceAfter, c.BalanceBefore)
}

// BatchEntry is one recipient of a batch issue, aggregated per address
type BatchEntry struct {
	Account       common.Address
	Amount        *big.Int
	BalanceBefore *big.Int
	BalanceAfter  *big.Int
}

// BatchIssueResult is the outcome of a single batchIssuePoints transaction
type BatchIssueResult struct {
	Receipt          *TxReceipt
	Entries          []BatchEntry
	TotalIssued      *big.Int
	TotalSupplyAfter *big.Int
}

// BalanceInfo is a balanceOf/totalSupply snapshot for one account
type BalanceInfo struct {
	Token       common.Address
	Account     common.Address
	Symbol      string
	Balance     *big.Int
	TotalSupply *big.Int
}

// ParseAddress validates a hex address; the zero address is rejected
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}
	return addr, nil
}

// ParseAmount parses a positive base-10 integer amount
func ParseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, s)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// IssueStep is one issuePoints call of the points script
type IssueStep struct {
	Index        int
	TxHash       common.Hash
	GasUsed      uint64
	BalanceAfter *big.Int
}

// IssuePointsSummary is the outcome of the points script
type IssuePointsSummary struct {
	Token          common.Address
	Target         common.Address
	Amount         *big.Int
	Count          int
	InitialBalance *big.Int
	FinalBalance   *big.Int
	TotalSupply    *big.Int
	Steps          []IssueStep
	TotalGas       uint64
	AverageGas     uint64

	// Batch is set when the batch alternative was also run
	Batch *BatchIssueResult
}
