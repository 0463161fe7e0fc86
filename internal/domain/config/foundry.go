package config

import "path/filepath"

// FoundryConfig represents the parts of foundry.toml pgw reads
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath       string `toml:"src,omitempty"`
	OutPath       string `toml:"out,omitempty"`
	SolcVersion   string `toml:"solc_version,omitempty"`
	Optimizer     bool   `toml:"optimizer,omitempty"`
	OptimizerRuns int    `toml:"optimizer_runs,omitempty"`
}

// Default returns the default profile, or an empty profile when absent
func (f *FoundryConfig) Default() ProfileConfig {
	if f == nil || f.Profile == nil {
		return ProfileConfig{}
	}
	return f.Profile["default"]
}

// SrcPathOrDefault returns the configured source dir, falling back to forge's default
func (p ProfileConfig) SrcPathOrDefault() string {
	if p.SrcPath == "" {
		return "src"
	}
	return p.SrcPath
}

// OutPathOrDefault returns the configured output dir, falling back to forge's default
func (p ProfileConfig) OutPathOrDefault() string {
	if p.OutPath == "" {
		return "out"
	}
	return p.OutPath
}

func joinRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
