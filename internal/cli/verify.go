package cli

import (
	"github.com/piggywatt/pgw-cli/internal/app"
	"github.com/piggywatt/pgw-cli/internal/cli/render"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <address>",
		Short: "Verify a deployed token on the network's block explorer",
		Long: `Submit the token source to the network's block explorer with
forge verify-contract. Requires OPBNB_API_KEY.

Examples:
  pgw verify --network opbnb_testnet 0x1234...`,
		Args: cobra.ExactArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			address, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}

			result, err := a.VerifyDeployment.Run(cmd.Context(), address)
			a.Progress.Stop()
			if err != nil {
				return err
			}

			return render.NewVerifyRenderer(cmd.OutOrStdout()).Render(result)
		}),
	}
}
