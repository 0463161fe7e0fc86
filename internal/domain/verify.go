package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// VerifyCommand formats the shell command an operator runs to verify a deployment
func VerifyCommand(network string, address common.Address) string {
	return fmt.Sprintf("pgw verify --network %s %s", network, address.Hex())
}
