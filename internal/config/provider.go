package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultContract is the artifact deployed when PGW_CONTRACT is unset
const DefaultContract = "PiggyWatt"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be loaded before any environment-backed key is read
	loadDotEnv(projectRoot)

	_, reportGas := os.LookupEnv("REPORT_GAS")

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Contract:       v.GetString("contract"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non-interactive"),
		Timeout:        v.GetDuration("timeout"),
		ReportGas:      reportGas,
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	table, err := NewNetworkTable(projectRoot)
	if err != nil {
		return nil, err
	}
	network, err := table.Resolve(v.GetString("network"))
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml.
// Outside a Foundry project the working directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("PGW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", LocalNetwork)
	v.SetDefault("contract", DefaultContract)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non-interactive", false)
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
