package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// Artifact is a compiled contract read from the build output
type Artifact struct {
	Name            string
	SourcePath      string
	ABI             abi.ABI
	Bytecode        []byte
	CompilerVersion string
}

// DeploymentRequest is assembled at the start of a run and never mutated
type DeploymentRequest struct {
	Network  *config.Network
	Signer   common.Address
	Artifact *Artifact
}

// TokenMetadata holds the token's self-described metadata
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// DeploymentResult is filled in step by step as the run progresses
type DeploymentResult struct {
	Network         string
	ChainID         uint64
	Deployer        common.Address
	DeployerBalance *big.Int // nil when the balance query failed
	NativeSymbol    string

	Address     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64

	Token TokenMetadata
	Owner common.Address

	VerifyCommand string
}
