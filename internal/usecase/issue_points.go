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

// Points script defaults
var (
	DefaultIssueTarget = common.HexToAddress("0x0D745Ff007d343D79164E30Ad00340d5770bFE27")
	DefaultIssueAmount = big.NewInt(777)
)

const DefaultIssueCount = 10

// IssuePointsParams contains parameters for the points script
type IssuePointsParams struct {
	Token  common.Address
	Target common.Address
	Amount *big.Int
	Count  int
	// Batch also runs one batchIssuePoints with Count copies of Amount
	Batch bool
}

// IssuePoints issues a fixed amount to one target repeatedly, checking every step
type IssuePoints struct {
	cfg       *config.RuntimeConfig
	signers   SignerResolver
	connector ChainConnector
	gas       GasRecorder
	progress  ProgressSink
	log       *slog.Logger
}

// NewIssuePoints creates a new IssuePoints use case
func NewIssuePoints(
	cfg *config.RuntimeConfig,
	signers SignerResolver,
	connector ChainConnector,
	gas GasRecorder,
	progress ProgressSink,
	log *slog.Logger,
) *IssuePoints {
	return &IssuePoints{
		cfg:       cfg,
		signers:   signers,
		connector: connector,
		gas:       gas,
		progress:  progress,
		log:       log.With("component", "IssuePoints"),
	}
}

// Run executes the script
func (uc *IssuePoints) Run(ctx context.Context, params IssuePointsParams) (*domain.IssuePointsSummary, error) {
	if params.Target == (common.Address{}) {
		params.Target = DefaultIssueTarget
	}
	if params.Amount == nil {
		params.Amount = DefaultIssueAmount
	}
	if params.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", params.Count)
	}
	if err := validateTransfer(params.Target, params.Amount); err != nil {
		return nil, err
	}

	session, err := openTokenSession(ctx, uc.cfg.Network, uc.signers, uc.connector, params.Token, true)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	token := session.token

	summary := &domain.IssuePointsSummary{
		Token:  params.Token,
		Target: params.Target,
		Amount: params.Amount,
		Count:  params.Count,
		Steps:  make([]domain.IssueStep, 0, params.Count),
	}

	if summary.InitialBalance, err = token.BalanceOf(ctx, params.Target); err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", params.Target.Hex(), err)
	}
	uc.log.Debug("starting points script", "target", params.Target.Hex(), "amount", params.Amount, "count", params.Count)

	for i := 1; i <= params.Count; i++ {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageTransacting,
			Current: i,
			Total:   params.Count,
			Message: fmt.Sprintf("[%d/%d] issuePoints %s", i, params.Count, params.Amount),
			Spinner: true,
		})

		change, err := applyChange(ctx, token, "issuePoints", params.Target, params.Amount,
			TokenContract.IssuePoints, uc.gas, NopProgress{}, uc.log)
		if err != nil {
			return summary, fmt.Errorf("step %d/%d: %w", i, params.Count, err)
		}

		summary.Steps = append(summary.Steps, domain.IssueStep{
			Index:        i,
			TxHash:       change.Receipt.Hash,
			GasUsed:      change.Receipt.GasUsed,
			BalanceAfter: change.BalanceAfter,
		})
	}

	// Cumulative check against the starting balance
	expected := new(big.Int).Mul(params.Amount, big.NewInt(int64(params.Count)))
	expected.Add(expected, summary.InitialBalance)
	last := summary.Steps[len(summary.Steps)-1].BalanceAfter
	if last.Cmp(expected) != 0 {
		return summary, fmt.Errorf("%w: balance %s after %d issues, expected %s",
			domain.ErrBalanceMismatch, last, params.Count, expected)
	}

	if params.Batch {
		recipients := lo.Times(params.Count, func(int) common.Address { return params.Target })
		amounts := lo.Times(params.Count, func(int) *big.Int { return new(big.Int).Set(params.Amount) })

		batch, err := applyBatch(ctx, token, recipients, amounts, uc.gas, uc.progress, uc.log)
		if err != nil {
			return summary, fmt.Errorf("batch: %w", err)
		}
		summary.Batch = batch
	}

	if summary.FinalBalance, err = token.BalanceOf(ctx, params.Target); err != nil {
		return summary, fmt.Errorf("failed to read balance of %s: %w", params.Target.Hex(), err)
	}
	if summary.TotalSupply, err = token.TotalSupply(ctx); err != nil {
		return summary, fmt.Errorf("failed to read total supply: %w", err)
	}

	summary.TotalGas = lo.SumBy(summary.Steps, func(s domain.IssueStep) uint64 { return s.GasUsed })
	summary.AverageGas = summary.TotalGas / uint64(len(summary.Steps))

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return summary, nil
}
