package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrNetworkNotFound is returned when a network name is not in the profile table
	ErrNetworkNotFound = errors.New("network not found")

	// ErrChainIDMismatch is returned when the node reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrTxReverted is returned when a mined transaction has a failed status
	ErrTxReverted = errors.New("transaction reverted")

	// ErrNoCode is returned when no contract code exists at an address
	ErrNoCode = errors.New("no contract code at address")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned for zero or negative token amounts
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBatchLengthMismatch is returned when batch recipients and amounts differ in length
	ErrBatchLengthMismatch = errors.New("recipients and amounts length mismatch")

	// ErrBalanceMismatch is returned when an observed balance change differs from the expected one
	ErrBalanceMismatch = errors.New("balance mismatch")

	// ErrUnexpectedEvent is returned when a receipt lacks the expected Transfer event
	ErrUnexpectedEvent = errors.New("unexpected transfer event")

	// ErrLocalNetwork is returned for operations that need a public network
	ErrLocalNetwork = errors.New("operation not supported on the local network")

	// ErrMissingAPIKey is returned when explorer verification has no API key
	ErrMissingAPIKey = errors.New("explorer API key not configured (set OPBNB_API_KEY)")

	// ErrDeploymentAborted is returned when the operator declines the deployment prompt
	ErrDeploymentAborted = errors.New("deployment aborted by user")
)

// CompileError is returned when the external build step or artifact load fails
type CompileError struct {
	Contract string
	Output   string
	Err      error
}

func (e *CompileError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("compile %s: %v\n%s", e.Contract, e.Err, e.Output)
	}
	return fmt.Sprintf("compile %s: %v", e.Contract, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// NoSignerError is returned when a non-local network has no account configured
type NoSignerError struct {
	Network string
}

func (e *NoSignerError) Error() string {
	return fmt.Sprintf("no signer configured for network %s (set PRIVATE_KEY)", e.Network)
}

// DeploymentStage identifies where a deployment failed
type DeploymentStage string

const (
	StageConnect DeploymentStage = "connect"
	StageSubmit  DeploymentStage = "submit"
	StageConfirm DeploymentStage = "confirm"
)

// DeploymentError is returned when submitting or confirming the creation transaction fails
type DeploymentError struct {
	Stage  DeploymentStage
	TxHash common.Hash
	Err    error
}

func (e *DeploymentError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("deployment failed at %s (tx %s): %v", e.Stage, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("deployment failed at %s: %v", e.Stage, e.Err)
}

func (e *DeploymentError) Unwrap() error { return e.Err }

// IntrospectionError is returned when a post-deploy read call fails.
// The contract is already on-chain; Address and TxHash allow recovery.
type IntrospectionError struct {
	Method  string
	Address common.Address
	TxHash  common.Hash
	Err     error
}

func (e *IntrospectionError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("read %s() on %s (deployed in tx %s): %v", e.Method, e.Address.Hex(), e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("read %s() on %s: %v", e.Method, e.Address.Hex(), e.Err)
}

func (e *IntrospectionError) Unwrap() error { return e.Err }
