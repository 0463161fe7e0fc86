package progress

import (
	"os"

	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"golang.org/x/term"
)

// Reporter is a ProgressSink that owns terminal state
type Reporter interface {
	usecase.ProgressSink
	Stop()
}

// NewReporter returns a spinner when stderr is a terminal, otherwise a no-op sink.
// Debug mode disables the spinner so log lines are not interleaved with it.
func NewReporter(cfg *config.RuntimeConfig) Reporter {
	if cfg.NonInteractive || cfg.Debug || !term.IsTerminal(int(os.Stderr.Fd())) {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
