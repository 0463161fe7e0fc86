package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerProgressReporter_StageLines(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompiling, Message: "Compiling contracts"})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolvingSigner, Message: "Resolving signer"})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})

	out := buf.String()
	assert.Contains(t, out, "✓ Compiling (")
	assert.Contains(t, out, "✓ Resolving signer (")
	assert.NotContains(t, out, "Completed")
	assert.Len(t, r.stages, 3)
	assert.False(t, r.spinner.Active())
}

func TestSpinnerProgressReporter_RepeatedStageIsOneEntry(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageTransacting, Current: i, Total: 3})
	}

	assert.Len(t, r.stages, 1)
	assert.Empty(t, buf.String())
}

func TestSpinnerProgressReporter_Suffix(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	r := newSpinnerProgressReporter(&bytes.Buffer{})

	assert.Equal(t, "Transacting [2/10] issuePoints 777",
		r.suffix(usecase.ProgressEvent{Stage: usecase.StageTransacting, Current: 2, Total: 10, Message: "issuePoints 777"}))
	assert.Equal(t, "Deploying", r.suffix(usecase.ProgressEvent{Stage: usecase.StageDeploying}))
}

func TestSpinnerProgressReporter_InfoAndError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)

	r.Info("hello")
	r.Error("boom")

	assert.Equal(t, "hello\nboom\n", buf.String())
}

func TestNewReporter_NonInteractive(t *testing.T) {
	r := NewReporter(&config.RuntimeConfig{NonInteractive: true})
	assert.IsType(t, &NopSink{}, r)

	r = NewReporter(&config.RuntimeConfig{Debug: true})
	assert.IsType(t, &NopSink{}, r)
}
