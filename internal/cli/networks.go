package cli

import (
	"github.com/piggywatt/pgw-cli/internal/app"
	"github.com/piggywatt/pgw-cli/internal/cli/render"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List available network profiles",
		Long: `List the built-in network profiles, merged with networks.yaml when present.

Shows chain ID, required confirmations, whether a signer is configured
(PRIVATE_KEY) and the block explorer.`,
		Args: cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			result, err := a.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		}),
	}
}
