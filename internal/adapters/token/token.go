package token

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/piggywatt/pgw-cli/internal/adapters/abi/bindings"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// ReceiptWaiter blocks until a transaction has the requested confirmations
type ReceiptWaiter interface {
	WaitReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*types.Receipt, error)
}

// Binding implements usecase.TokenContract over the generated PiggyWatt binding
type Binding struct {
	contract      *bindings.PiggyWatt
	instance      *bind.BoundContract
	address       common.Address
	signer        usecase.Signer
	chainID       *big.Int
	waiter        ReceiptWaiter
	confirmations uint64
	timeout       time.Duration
}

// Options configures a Binding
type Options struct {
	Backend       bind.ContractBackend
	Waiter        ReceiptWaiter
	ChainID       uint64
	Confirmations uint64
	// Timeout bounds each read call and each transaction submission. Zero means no bound.
	Timeout time.Duration
	// Signer may be nil for a read-only binding
	Signer usecase.Signer
}

// New binds the token deployed at address
func New(address common.Address, opts Options) *Binding {
	contract := bindings.NewPiggyWatt()
	return &Binding{
		contract:      contract,
		instance:      contract.Instance(opts.Backend, address),
		address:       address,
		signer:        opts.Signer,
		chainID:       new(big.Int).SetUint64(opts.ChainID),
		waiter:        opts.Waiter,
		confirmations: opts.Confirmations,
		timeout:       opts.Timeout,
	}
}

// Address returns the bound contract address
func (b *Binding) Address() common.Address {
	return b.address
}

func (b *Binding) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout > 0 {
		return context.WithTimeout(ctx, b.timeout)
	}
	return ctx, func() {}
}

func (b *Binding) callOpts(ctx context.Context) (*bind.CallOpts, context.CancelFunc) {
	ctx, cancel := b.withTimeout(ctx)
	return &bind.CallOpts{Context: ctx}, cancel
}

// call runs a read-only method with the binding's timeout
func call[T any](ctx context.Context, b *Binding, calldata []byte, unpack func([]byte) (T, error)) (T, error) {
	opts, cancel := b.callOpts(ctx)
	defer cancel()
	return bind.Call(b.instance, opts, calldata, unpack)
}

func (b *Binding) Name(ctx context.Context) (string, error) {
	return call(ctx, b, b.contract.PackName(), b.contract.UnpackName)
}

func (b *Binding) Symbol(ctx context.Context) (string, error) {
	return call(ctx, b, b.contract.PackSymbol(), b.contract.UnpackSymbol)
}

func (b *Binding) Decimals(ctx context.Context) (uint8, error) {
	return call(ctx, b, b.contract.PackDecimals(), b.contract.UnpackDecimals)
}

func (b *Binding) Owner(ctx context.Context) (common.Address, error) {
	return call(ctx, b, b.contract.PackOwner(), b.contract.UnpackOwner)
}

func (b *Binding) TotalSupply(ctx context.Context) (*big.Int, error) {
	return call(ctx, b, b.contract.PackTotalSupply(), b.contract.UnpackTotalSupply)
}

func (b *Binding) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return call(ctx, b, b.contract.PackBalanceOf(account), b.contract.UnpackBalanceOf)
}

func (b *Binding) Mint(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	data, err := b.contract.TryPackMint(to, amount)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, data)
}

func (b *Binding) Burn(ctx context.Context, from common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	data, err := b.contract.TryPackBurn(from, amount)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, data)
}

func (b *Binding) IssuePoints(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	data, err := b.contract.TryPackIssuePoints(to, amount)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, data)
}

func (b *Binding) BatchIssuePoints(ctx context.Context, recipients []common.Address, amounts []*big.Int) (*domain.TxReceipt, error) {
	data, err := b.contract.TryPackBatchIssuePoints(recipients, amounts)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, data)
}

// transact signs and sends data, then waits for the network's confirmations
func (b *Binding) transact(ctx context.Context, data []byte) (*domain.TxReceipt, error) {
	if b.signer == nil {
		return nil, fmt.Errorf("token binding at %s is read-only", b.address.Hex())
	}

	// Nonce, fee and gas lookups plus the send share one deadline
	sendCtx, cancel := b.withTimeout(ctx)
	defer cancel()

	opts, err := b.signer.TransactOpts(sendCtx, b.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = sendCtx

	tx, err := bind.Transact(b.instance, opts, data)
	if err != nil {
		return nil, err
	}

	receipt, err := b.waiter.WaitReceipt(ctx, tx.Hash(), b.confirmations)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", tx.Hash().Hex(), err)
	}

	return b.decodeReceipt(receipt)
}

// decodeReceipt keeps the Transfer events emitted by this contract
func (b *Binding) decodeReceipt(receipt *types.Receipt) (*domain.TxReceipt, error) {
	out := &domain.TxReceipt{
		Hash:    receipt.TxHash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		out.BlockNumber = receipt.BlockNumber.Uint64()
	}

	for _, log := range receipt.Logs {
		if log.Address != b.address || len(log.Topics) == 0 || log.Topics[0] != transferTopic {
			continue
		}
		event, err := b.contract.UnpackTransferEvent(log)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Transfer log %d: %w", log.Index, err)
		}
		out.Transfers = append(out.Transfers, domain.Transfer{
			From:  event.From,
			To:    event.To,
			Value: event.Value,
		})
	}

	return out, nil
}

var _ usecase.TokenContract = (*Binding)(nil)
