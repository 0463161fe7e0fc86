package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Network selected with --network (or PGW_NETWORK), fully resolved
	Network *Network

	// Contract is the artifact name deployed and introspected (default PiggyWatt)
	Contract string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// ReportGas is true when REPORT_GAS is present in the environment
	ReportGas bool

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// OutDir returns the absolute build output directory
func (c *RuntimeConfig) OutDir() string {
	out := "out"
	if c.FoundryConfig != nil {
		out = c.FoundryConfig.Default().OutPathOrDefault()
	}
	return joinRoot(c.ProjectRoot, out)
}
