package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/samber/lo"
)

// ManageToken performs owner operations on a deployed token and checks their effect on-chain
type ManageToken struct {
	cfg       *config.RuntimeConfig
	signers   SignerResolver
	connector ChainConnector
	gas       GasRecorder
	progress  ProgressSink
	log       *slog.Logger
}

// NewManageToken creates a new ManageToken use case
func NewManageToken(
	cfg *config.RuntimeConfig,
	signers SignerResolver,
	connector ChainConnector,
	gas GasRecorder,
	progress ProgressSink,
	log *slog.Logger,
) *ManageToken {
	return &ManageToken{
		cfg:       cfg,
		signers:   signers,
		connector: connector,
		gas:       gas,
		progress:  progress,
		log:       log.With("component", "ManageToken"),
	}
}

// Mint creates amount tokens for to
func (uc *ManageToken) Mint(ctx context.Context, token, to common.Address, amount *big.Int) (*domain.BalanceChange, error) {
	return uc.change(ctx, token, "mint", to, amount, TokenContract.Mint)
}

// Issue credits amount points to to. Equivalent to Mint on the contract side.
func (uc *ManageToken) Issue(ctx context.Context, token, to common.Address, amount *big.Int) (*domain.BalanceChange, error) {
	return uc.change(ctx, token, "issuePoints", to, amount, TokenContract.IssuePoints)
}

// Burn destroys amount tokens held by from
func (uc *ManageToken) Burn(ctx context.Context, token, from common.Address, amount *big.Int) (*domain.BalanceChange, error) {
	return uc.change(ctx, token, "burn", from, amount, TokenContract.Burn)
}

type tokenTx func(t TokenContract, ctx context.Context, account common.Address, amount *big.Int) (*domain.TxReceipt, error)

func (uc *ManageToken) change(
	ctx context.Context,
	tokenAddress common.Address,
	operation string,
	account common.Address,
	amount *big.Int,
	send tokenTx,
) (*domain.BalanceChange, error) {
	if err := validateTransfer(account, amount); err != nil {
		return nil, err
	}

	session, err := openTokenSession(ctx, uc.cfg.Network, uc.signers, uc.connector, tokenAddress, true)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	return applyChange(ctx, session.token, operation, account, amount, send, uc.gas, uc.progress, uc.log)
}

// applyChange sends one mint/burn/issue and checks the Transfer event and the balance delta
func applyChange(
	ctx context.Context,
	token TokenContract,
	operation string,
	account common.Address,
	amount *big.Int,
	send tokenTx,
	gas GasRecorder,
	progress ProgressSink,
	log *slog.Logger,
) (*domain.BalanceChange, error) {
	before, err := token.BalanceOf(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", account.Hex(), err)
	}

	progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageTransacting,
		Message: fmt.Sprintf("%s %s -> %s", operation, amount, account.Hex()),
		Spinner: true,
	})
	receipt, err := send(token, ctx, account, amount)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", operation, err)
	}
	log.Info("transaction confirmed", "op", operation, "tx", receipt.Hash.Hex(), "gas", receipt.GasUsed)
	gas.Record(operation, receipt.GasUsed)

	burn := operation == "burn"
	if err := expectTransfer(receipt, account, amount, burn); err != nil {
		return nil, err
	}

	after, err := token.BalanceOf(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", account.Hex(), err)
	}
	supply, err := token.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total supply: %w", err)
	}

	change := &domain.BalanceChange{
		Operation:        operation,
		Account:          account,
		Receipt:          receipt,
		BalanceBefore:    before,
		BalanceAfter:     after,
		TotalSupplyAfter: supply,
	}

	expected := new(big.Int).Set(amount)
	if burn {
		expected.Neg(expected)
	}
	if change.Delta().Cmp(expected) != 0 {
		return change, fmt.Errorf("%w: %s changed balance of %s by %s, expected %s",
			domain.ErrBalanceMismatch, operation, account.Hex(), change.Delta(), expected)
	}

	return change, nil
}

// BatchIssue credits every recipient in a single transaction
func (uc *ManageToken) BatchIssue(ctx context.Context, tokenAddress common.Address, recipients []common.Address, amounts []*big.Int) (*domain.BatchIssueResult, error) {
	if len(recipients) == 0 || len(recipients) != len(amounts) {
		return nil, fmt.Errorf("%w: %d recipients, %d amounts", domain.ErrBatchLengthMismatch, len(recipients), len(amounts))
	}
	for i := range recipients {
		if err := validateTransfer(recipients[i], amounts[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	session, err := openTokenSession(ctx, uc.cfg.Network, uc.signers, uc.connector, tokenAddress, true)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	return applyBatch(ctx, session.token, recipients, amounts, uc.gas, uc.progress, uc.log)
}

// applyBatch sends batchIssuePoints and checks each distinct recipient's balance delta
func applyBatch(
	ctx context.Context,
	token TokenContract,
	recipients []common.Address,
	amounts []*big.Int,
	gas GasRecorder,
	progress ProgressSink,
	log *slog.Logger,
) (*domain.BatchIssueResult, error) {
	// Duplicate recipients are credited once per occurrence
	totals := map[common.Address]*big.Int{}
	order := lo.Uniq(recipients)
	for i, r := range recipients {
		if _, ok := totals[r]; !ok {
			totals[r] = new(big.Int)
		}
		totals[r].Add(totals[r], amounts[i])
	}

	entries := make([]domain.BatchEntry, 0, len(order))
	for _, r := range order {
		before, err := token.BalanceOf(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to read balance of %s: %w", r.Hex(), err)
		}
		entries = append(entries, domain.BatchEntry{Account: r, Amount: totals[r], BalanceBefore: before})
	}

	progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageTransacting,
		Message: fmt.Sprintf("batchIssuePoints to %d recipient(s)", len(recipients)),
		Spinner: true,
	})
	receipt, err := token.BatchIssuePoints(ctx, recipients, amounts)
	if err != nil {
		return nil, fmt.Errorf("batchIssuePoints failed: %w", err)
	}
	log.Info("transaction confirmed", "op", "batchIssuePoints", "tx", receipt.Hash.Hex(), "gas", receipt.GasUsed)
	gas.Record("batchIssuePoints", receipt.GasUsed)

	mints := lo.Filter(receipt.Transfers, func(t domain.Transfer, _ int) bool { return t.IsMint() })
	if len(mints) != len(recipients) {
		return nil, fmt.Errorf("%w: expected %d mint transfers in %s, got %d",
			domain.ErrUnexpectedEvent, len(recipients), receipt.Hash.Hex(), len(mints))
	}

	result := &domain.BatchIssueResult{
		Receipt:     receipt,
		TotalIssued: sumAmounts(amounts),
	}
	for i := range entries {
		after, err := token.BalanceOf(ctx, entries[i].Account)
		if err != nil {
			return nil, fmt.Errorf("failed to read balance of %s: %w", entries[i].Account.Hex(), err)
		}
		entries[i].BalanceAfter = after
	}
	result.Entries = entries

	supply, err := token.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total supply: %w", err)
	}
	result.TotalSupplyAfter = supply

	for _, e := range entries {
		delta := new(big.Int).Sub(e.BalanceAfter, e.BalanceBefore)
		if delta.Cmp(e.Amount) != 0 {
			return result, fmt.Errorf("%w: batch changed balance of %s by %s, expected %s",
				domain.ErrBalanceMismatch, e.Account.Hex(), delta, e.Amount)
		}
	}

	return result, nil
}

// Balance reads balanceOf(account) and totalSupply without a signer
func (uc *ManageToken) Balance(ctx context.Context, tokenAddress, account common.Address) (*domain.BalanceInfo, error) {
	session, err := openTokenSession(ctx, uc.cfg.Network, uc.signers, uc.connector, tokenAddress, false)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	info := &domain.BalanceInfo{Token: tokenAddress, Account: account}
	if info.Symbol, err = session.token.Symbol(ctx); err != nil {
		return nil, fmt.Errorf("failed to read symbol: %w", err)
	}
	if info.Balance, err = session.token.BalanceOf(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", account.Hex(), err)
	}
	if info.TotalSupply, err = session.token.TotalSupply(ctx); err != nil {
		return nil, fmt.Errorf("failed to read total supply: %w", err)
	}
	return info, nil
}

func validateTransfer(account common.Address, amount *big.Int) error {
	if account == (common.Address{}) {
		return fmt.Errorf("%w: zero address", domain.ErrInvalidAddress)
	}
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	return nil
}

// expectTransfer checks the receipt carries the Transfer a mint or burn of amount must emit
func expectTransfer(receipt *domain.TxReceipt, account common.Address, amount *big.Int, burn bool) error {
	_, found := lo.Find(receipt.Transfers, func(t domain.Transfer) bool {
		if t.Value == nil || t.Value.Cmp(amount) != 0 {
			return false
		}
		if burn {
			return t.IsBurn() && t.From == account
		}
		return t.IsMint() && t.To == account
	})
	if !found {
		kind := "mint"
		if burn {
			kind = "burn"
		}
		return fmt.Errorf("%w: no %s Transfer of %s for %s in %s",
			domain.ErrUnexpectedEvent, kind, amount, account.Hex(), receipt.Hash.Hex())
	}
	return nil
}

func sumAmounts(amounts []*big.Int) *big.Int {
	return lo.Reduce(amounts, func(acc *big.Int, a *big.Int, _ int) *big.Int {
		return acc.Add(acc, a)
	}, new(big.Int))
}
