package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"golang.org/x/term"
)

// ConfirmAdapter asks the operator before a mainnet deployment
type ConfirmAdapter struct {
	config *config.RuntimeConfig
	out    io.Writer
	isTTY  func() bool
	prompt func(label string) (bool, error)
}

// NewConfirmAdapter creates a confirm adapter reading from the terminal
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{
		config: cfg,
		out:    os.Stderr,
		isTTY:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		prompt: confirmPrompt,
	}
}

// ConfirmDeployment shows the deployment summary and asks for a yes.
// Without a terminal, or in non-interactive mode, it proceeds without asking.
func (c *ConfirmAdapter) ConfirmDeployment(ctx context.Context, req *domain.DeploymentRequest, balance *big.Int) (bool, error) {
	if c.config.NonInteractive || !c.isTTY() {
		return true, nil
	}

	fmt.Fprint(c.out, deploymentSummary(req, balance))
	return c.prompt(fmt.Sprintf("Deploy %s to %s", req.Artifact.Name, req.Network.Name))
}

// deploymentSummary lists what is about to be deployed where
func deploymentSummary(req *domain.DeploymentRequest, balance *big.Int) string {
	warn := color.New(color.FgYellow, color.Bold)
	label := color.New(color.FgWhite, color.Bold)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", warn.Sprintf("You are about to deploy to %s (chain %d)", req.Network.Name, req.Network.ChainID))
	fmt.Fprintf(&b, "  %s %s\n", label.Sprint("Contract:"), req.Artifact.Name)
	fmt.Fprintf(&b, "  %s %s\n", label.Sprint("Deployer:"), req.Signer.Hex())
	fmt.Fprintf(&b, "  %s %s %s\n", label.Sprint("Balance: "), domain.FormatEther(balance), req.Network.NativeSymbol)
	return b.String()
}

// confirmPrompt asks a yes/no question. Answering no is not an error.
func confirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt):
		return false, domain.ErrDeploymentAborted
	default:
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
}

var _ usecase.DeploymentConfirmer = (*ConfirmAdapter)(nil)
