package verification

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// ForgeVerifier submits contract source to an Etherscan-compatible explorer with forge verify-contract
type ForgeVerifier struct {
	projectRoot string
	foundry     config.ProfileConfig
	binary      string
	log         *slog.Logger
}

// NewForgeVerifier creates a new verifier
func NewForgeVerifier(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeVerifier {
	return &ForgeVerifier{
		projectRoot: cfg.ProjectRoot,
		foundry:     cfg.FoundryConfig.Default(),
		binary:      "forge",
		log:         log.With("component", "ForgeVerifier"),
	}
}

// Verify performs contract verification
func (v *ForgeVerifier) Verify(ctx context.Context, network *config.Network, artifact *domain.Artifact, address common.Address) error {
	if network.Explorer.APIKey == "" {
		return domain.ErrMissingAPIKey
	}

	args := v.buildVerifyArgs(network, artifact, address)
	v.log.Debug("running forge verify-contract", "address", address.Hex(), "explorer", network.Explorer.Name)

	return v.executeForgeVerify(ctx, args)
}

// buildVerifyArgs builds the forge verify-contract args. The API key is passed last.
func (v *ForgeVerifier) buildVerifyArgs(network *config.Network, artifact *domain.Artifact, address common.Address) []string {
	contractPath := artifact.Name
	if artifact.SourcePath != "" {
		contractPath = fmt.Sprintf("%s:%s", artifact.SourcePath, artifact.Name)
	}

	args := []string{
		"verify-contract",
		address.Hex(),
		contractPath,
		"--chain-id", fmt.Sprintf("%d", network.ChainID),
		"--verifier", "etherscan",
		"--verifier-url", network.Explorer.APIURL,
		"--watch",
	}

	if artifact.CompilerVersion != "" {
		args = append(args, "--compiler-version", artifact.CompilerVersion)
	}
	if v.foundry.Optimizer && v.foundry.OptimizerRuns > 0 {
		args = append(args, "--num-of-optimizations", fmt.Sprintf("%d", v.foundry.OptimizerRuns))
	}

	return append(args, "--etherscan-api-key", network.Explorer.APIKey)
}

// executeForgeVerify executes a forge verify-contract command
func (v *ForgeVerifier) executeForgeVerify(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, v.binary, args...)
	cmd.Dir = v.projectRoot

	output, err := cmd.CombinedOutput()
	outputStr := strings.TrimSpace(string(output))
	if alreadyVerified(outputStr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("forge verify-contract: %s", outputStr)
	}

	if strings.Contains(outputStr, "Contract successfully verified") ||
		strings.Contains(outputStr, "Pass - Verified") {
		return nil
	}

	return fmt.Errorf("verification status unclear: %s", outputStr)
}

func alreadyVerified(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "already verified")
}
