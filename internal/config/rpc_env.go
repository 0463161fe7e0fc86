package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// envVarPattern matches a ${VAR_NAME} value in networks.yaml
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(strings.TrimSpace(rawValue))
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// RPCEnvVarName is the variable that overrides a profile's RPC URL.
// opbnb_testnet -> OPBNB_TESTNET_RPC_URL, hardhat -> HARDHAT_RPC_URL
func RPCEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// resolveRPCURL applies the <NAME>_RPC_URL override, then expands a ${VAR} reference
func (t *NetworkTable) resolveRPCURL(network *config.Network) (string, error) {
	if v, ok := t.lookup(RPCEnvVarName(network.Name)); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}

	ref, ok := DetectEnvVar(network.RPCURL)
	if !ok {
		return network.RPCURL, nil
	}
	v, ok := t.lookup(ref)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("network %s: RPC URL references unset variable %s", network.Name, ref)
	}
	return strings.TrimSpace(v), nil
}
