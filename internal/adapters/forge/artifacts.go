package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// bytecodeObject is the bytecode section of a Foundry artifact
type bytecodeObject struct {
	Object         string         `json:"object"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// artifactFile is the subset of out/<Source>.sol/<Name>.json pgw reads
type artifactFile struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode bytecodeObject  `json:"bytecode"`
	Metadata struct {
		Compiler struct {
			Version string `json:"version"`
		} `json:"compiler"`
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// ArtifactLoader reads compiled contracts from the Foundry output directory
type ArtifactLoader struct {
	outDir string
}

// NewArtifactLoader creates a loader for the project's out directory
func NewArtifactLoader(cfg *config.RuntimeConfig) *ArtifactLoader {
	return &ArtifactLoader{outDir: cfg.OutDir()}
}

// LoadArtifact reads the artifact for the named contract
func (l *ArtifactLoader) LoadArtifact(ctx context.Context, name string) (*domain.Artifact, error) {
	path, err := l.find(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	return parseArtifact(name, data)
}

// find locates the artifact, preferring out/<Name>.sol/<Name>.json
func (l *ArtifactLoader) find(name string) (string, error) {
	direct := filepath.Join(l.outDir, name+".sol", name+".json")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	matches, err := filepath.Glob(filepath.Join(l.outDir, "*", name+".json"))
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("artifact for %s not found in %s (did the build succeed?)", name, l.outDir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple artifacts named %s: %s", name, strings.Join(matches, ", "))
	}
}

func parseArtifact(name string, data []byte) (*domain.Artifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", name, err)
	}

	if len(file.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no ABI", name)
	}
	parsed, err := abi.JSON(strings.NewReader(string(file.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}

	if len(file.Bytecode.LinkReferences) > 0 || strings.Contains(file.Bytecode.Object, "__$") {
		return nil, fmt.Errorf("artifact %s requires library linking, which is not supported", name)
	}

	var bytecode []byte
	if obj := file.Bytecode.Object; obj != "" && obj != "0x" {
		if !strings.HasPrefix(obj, "0x") {
			obj = "0x" + obj
		}
		bytecode, err = hexutil.Decode(obj)
		if err != nil {
			return nil, fmt.Errorf("invalid bytecode in artifact %s: %w", name, err)
		}
	}

	artifact := &domain.Artifact{
		Name:            name,
		ABI:             parsed,
		Bytecode:        bytecode,
		CompilerVersion: file.Metadata.Compiler.Version,
	}
	for source, contract := range file.Metadata.Settings.CompilationTarget {
		if contract == name {
			artifact.SourcePath = source
		}
	}

	return artifact, nil
}
