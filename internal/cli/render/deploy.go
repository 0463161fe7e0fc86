package render

import (
	"fmt"
	"io"

	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// DeployRenderer prints the outcome of a deployment
type DeployRenderer struct {
	out     io.Writer
	network *config.Network
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, network *config.Network) *DeployRenderer {
	return &DeployRenderer{out: out, network: network}
}

// RenderStart prints the banner shown before compiling
func (r *DeployRenderer) RenderStart(contract string) {
	fmt.Fprintf(r.out, "Starting %s deployment on %s...\n", contract, r.network.Name)
}

// Render prints every field of the result, in the order the deployment produced them
func (r *DeployRenderer) Render(result *domain.DeploymentResult) error {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Deployer address:"), addressStyle.Sprint(result.Deployer.Hex()))
	fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("Deployer balance:"), domain.FormatEther(result.DeployerBalance), result.NativeSymbol)

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s contract deployed successfully!", displayName(result))))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Contract address:"), addressStyle.Sprint(result.Address.Hex()))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Deployment transaction:"), result.TxHash.Hex())
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Network chain ID:"), result.ChainID)
	fmt.Fprintf(r.out, "%s %d (gas used %s)\n", labelStyle.Sprint("Block:"), result.BlockNumber, formatGas(result.GasUsed))
	if url := r.network.AddressURL(result.Address.Hex()); url != "" {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Explorer:"), faintStyle.Sprint(url))
	}

	fmt.Fprintln(r.out, section("Contract Information"))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Token name:"), result.Token.Name)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Token symbol:"), result.Token.Symbol)
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Decimal places:"), result.Token.Decimals)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Owner:"), addressStyle.Sprint(result.Owner.Hex()))

	fmt.Fprintln(r.out, section("Contract Verification Command"))
	fmt.Fprintln(r.out, result.VerifyCommand)

	return nil
}

func displayName(result *domain.DeploymentResult) string {
	if result.Token.Name != "" {
		return result.Token.Name
	}
	return "Token"
}

var _ Renderer[*domain.DeploymentResult] = (*DeployRenderer)(nil)
