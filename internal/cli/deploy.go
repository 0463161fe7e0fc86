package cli

import (
	"github.com/piggywatt/pgw-cli/internal/app"
	"github.com/piggywatt/pgw-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Compile and deploy a new token instance",
		Long: `Compile the token with forge, deploy it with the network's signer,
wait for confirmations and print the deployed contract's information.

Every run deploys a new instance; nothing is reused or resumed.

Examples:
  pgw deploy                              # Deploy to the in-process local chain
  pgw deploy --network opbnb_testnet      # Deploy to opBNB testnet (PRIVATE_KEY)
  pgw deploy -n opbnb_mainnet             # Asks for confirmation before deploying`,
		Args: cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), a.Config.Network)
			renderer.RenderStart(a.Config.Contract)

			result, err := a.DeployToken.Run(cmd.Context())
			a.Progress.Stop()
			if err != nil {
				return err
			}

			return renderer.Render(result)
		}),
	}
}
