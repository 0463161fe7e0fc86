package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/app"
	"github.com/piggywatt/pgw-cli/internal/cli/render"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewTokenCmd creates the token command group
func NewTokenCmd() *cobra.Command {
	var tokenFlag string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Owner operations on a deployed token",
		Long: `Mint, burn and issue points on a deployed token, and read balances.

Every transaction is signed by the network's signer, which must be the
token owner. Each operation checks the emitted Transfer event and the
resulting balance change.`,
	}

	cmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Address of the deployed token")
	_ = cmd.MarkPersistentFlagRequired("token")

	tokenAddress := func() (common.Address, error) {
		address, err := domain.ParseAddress(tokenFlag)
		if err != nil {
			return common.Address{}, fmt.Errorf("--token: %w", err)
		}
		return address, nil
	}

	cmd.AddCommand(
		newChangeCmd("mint <address> <amount>", "Mint tokens to an address", tokenAddress,
			func(ctx context.Context, a *app.App, token, account common.Address, amount *big.Int) (*domain.BalanceChange, error) {
				return a.ManageToken.Mint(ctx, token, account, amount)
			}),
		newChangeCmd("burn <address> <amount>", "Burn tokens held by an address", tokenAddress,
			func(ctx context.Context, a *app.App, token, account common.Address, amount *big.Int) (*domain.BalanceChange, error) {
				return a.ManageToken.Burn(ctx, token, account, amount)
			}),
		newChangeCmd("issue <address> <amount>", "Issue points to an address", tokenAddress,
			func(ctx context.Context, a *app.App, token, account common.Address, amount *big.Int) (*domain.BalanceChange, error) {
				return a.ManageToken.Issue(ctx, token, account, amount)
			}),
		newBatchIssueCmd(tokenAddress),
		newBalanceCmd(tokenAddress),
		newIssueScriptCmd(tokenAddress),
	)

	return cmd
}

type changeFunc func(ctx context.Context, a *app.App, token, account common.Address, amount *big.Int) (*domain.BalanceChange, error)

func newChangeCmd(use, short string, tokenAddress func() (common.Address, error), change changeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			token, err := tokenAddress()
			if err != nil {
				return err
			}
			account, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			amount, err := domain.ParseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := change(cmd.Context(), a, token, account, amount)
			a.Progress.Stop()
			if result != nil {
				if renderErr := render.NewTokenRenderer(cmd.OutOrStdout()).RenderChange(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		}),
	}
}

func newBatchIssueCmd(tokenAddress func() (common.Address, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-issue <address:amount>...",
		Short: "Issue points to several addresses in one transaction",
		Long: `Issue points to several addresses with a single batchIssuePoints transaction.

Examples:
  pgw token batch-issue --token 0x5FbDB... 0x7099...:100 0x3C44...:250`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			token, err := tokenAddress()
			if err != nil {
				return err
			}
			recipients, amounts, err := parseBatchEntries(args)
			if err != nil {
				return err
			}

			result, err := a.ManageToken.BatchIssue(cmd.Context(), token, recipients, amounts)
			a.Progress.Stop()
			if result != nil {
				if renderErr := render.NewTokenRenderer(cmd.OutOrStdout()).RenderBatch(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		}),
	}
}

func newBalanceCmd(tokenAddress func() (common.Address, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			token, err := tokenAddress()
			if err != nil {
				return err
			}
			account, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}

			info, err := a.ManageToken.Balance(cmd.Context(), token, account)
			a.Progress.Stop()
			if err != nil {
				return err
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderBalance(info)
		}),
	}
}

func newIssueScriptCmd(tokenAddress func() (common.Address, error)) *cobra.Command {
	var (
		targetFlag string
		amountFlag string
		countFlag  int
		batchFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "issue-script",
		Short: "Issue a fixed amount to one address repeatedly, checking every step",
		Long: `Issue --amount points to --target, --count times in sequence. Each issue
must raise the balance by exactly --amount. With --batch, one
batchIssuePoints of --count entries follows the sequential issues.

Examples:
  pgw token issue-script --token 0x5FbDB...
  pgw token issue-script --token 0x5FbDB... --target 0x7099... --amount 10 --count 3 --batch`,
		Args: cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			token, err := tokenAddress()
			if err != nil {
				return err
			}

			params := usecase.IssuePointsParams{
				Token: token,
				Count: countFlag,
				Batch: batchFlag,
			}
			if targetFlag != "" {
				if params.Target, err = domain.ParseAddress(targetFlag); err != nil {
					return fmt.Errorf("--target: %w", err)
				}
			}
			if amountFlag != "" {
				if params.Amount, err = domain.ParseAmount(amountFlag); err != nil {
					return fmt.Errorf("--amount: %w", err)
				}
			}

			summary, err := a.IssuePoints.Run(cmd.Context(), params)
			a.Progress.Stop()
			if summary != nil && len(summary.Steps) > 0 {
				if renderErr := render.NewTokenRenderer(cmd.OutOrStdout()).RenderIssueSummary(summary); renderErr != nil {
					return renderErr
				}
			}
			return err
		}),
	}

	cmd.Flags().StringVar(&targetFlag, "target", "", fmt.Sprintf("Address receiving the points (default %s)", usecase.DefaultIssueTarget.Hex()))
	cmd.Flags().StringVar(&amountFlag, "amount", usecase.DefaultIssueAmount.String(), "Points issued per transaction")
	cmd.Flags().IntVar(&countFlag, "count", usecase.DefaultIssueCount, "Number of issue transactions")
	cmd.Flags().BoolVar(&batchFlag, "batch", false, "Also issue --count entries with one batchIssuePoints")

	return cmd
}

// parseBatchEntries parses address:amount arguments
func parseBatchEntries(args []string) ([]common.Address, []*big.Int, error) {
	recipients := make([]common.Address, 0, len(args))
	amounts := make([]*big.Int, 0, len(args))

	for _, arg := range args {
		addr, amt, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, nil, fmt.Errorf("invalid entry %q: expected <address>:<amount>", arg)
		}
		recipient, err := domain.ParseAddress(addr)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %q: %w", arg, err)
		}
		amount, err := domain.ParseAmount(amt)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %q: %w", arg, err)
		}
		recipients = append(recipients, recipient)
		amounts = append(amounts, amount)
	}

	return recipients, amounts, nil
}
