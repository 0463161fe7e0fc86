package cli

import (
	"github.com/piggywatt/pgw-cli/internal/app"
	"github.com/piggywatt/pgw-cli/internal/cli/render"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Read the metadata of a deployed token",
		Long: `Read name, symbol, decimals, owner and total supply of a deployed token.

Use it to recover the contract information when a deployment succeeded
but reading it back failed.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			address, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}

			info, err := a.InspectToken.Run(cmd.Context(), address)
			a.Progress.Stop()
			if err != nil {
				return err
			}

			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderInfo(info)
		}),
	}
}
