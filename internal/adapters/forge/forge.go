package forge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

// ForgeAdapter runs forge in the project root
type ForgeAdapter struct {
	log         *slog.Logger
	projectRoot string
	contract    string
	debug       bool
	binary      string
	stream      io.Writer
}

// NewForgeAdapter creates a new forge executor
func NewForgeAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeAdapter {
	return &ForgeAdapter{
		log:         log.With("component", "ForgeAdapter"),
		projectRoot: cfg.ProjectRoot,
		contract:    cfg.Contract,
		debug:       cfg.Debug,
		binary:      "forge",
		stream:      os.Stderr,
	}
}

// Build runs forge build. In debug mode the compiler output is streamed through a pty.
func (f *ForgeAdapter) Build(ctx context.Context) error {
	start := time.Now()
	f.log.Debug("running forge build", "dir", f.projectRoot)

	if _, err := exec.LookPath(f.binary); err != nil {
		return &domain.CompileError{Contract: f.contract, Err: fmt.Errorf("%s not found in PATH (install Foundry: https://getfoundry.sh)", f.binary)}
	}

	cmd := exec.CommandContext(ctx, f.binary, "build")
	cmd.Dir = f.projectRoot

	var output []byte
	var err error
	if f.debug {
		output, err = f.runStreaming(cmd)
	} else {
		output, err = cmd.CombinedOutput()
	}
	duration := time.Since(start)

	if err != nil {
		f.log.Error("forge build failed", "error", err, "duration", duration)
		return &domain.CompileError{Contract: f.contract, Output: string(bytes.TrimSpace(output)), Err: err}
	}

	f.log.Debug("forge build completed successfully", "duration", duration)
	return nil
}

// runStreaming copies the command's pty output to the stream while keeping a copy
func (f *ForgeAdapter) runStreaming(cmd *exec.Cmd) ([]byte, error) {
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var buf bytes.Buffer
	// The pty read fails with EIO once the child exits; that is the normal end of output
	_, _ = io.Copy(io.MultiWriter(f.stream, &buf), ptyFile)

	return buf.Bytes(), cmd.Wait()
}
