package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// SpinnerProgressReporter shows the running stage behind a spinner and
// prints a line for every finished stage
type SpinnerProgressReporter struct {
	spinner      *spinner.Spinner
	out          io.Writer
	stages       []stageInfo
	currentStage usecase.ExecutionStage
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a reporter writing to stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		r.currentStage = event.Stage
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: time.Now()})
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Stage == usecase.StageCompleted {
		r.Stop()
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.suffix(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// suffix renders "● Stage [n/total] message"
func (r *SpinnerProgressReporter) suffix(event usecase.ProgressEvent) string {
	var b strings.Builder
	b.WriteString(color.New(color.FgYellow).Sprint(string(event.Stage)))
	if event.Total > 0 {
		fmt.Fprintf(&b, " [%d/%d]", event.Current, event.Total)
	}
	if event.Message != "" {
		b.WriteString(" ")
		b.WriteString(event.Message)
	}
	return b.String()
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// Stop halts the spinner; safe to call more than once
func (r *SpinnerProgressReporter) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerProgressReporter) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage stamps the running stage and prints it with its duration
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) == 0 {
		return
	}
	idx := len(r.stages) - 1
	if !r.stages[idx].EndTime.IsZero() {
		return
	}
	r.stages[idx].EndTime = time.Now()

	stage := r.stages[idx]
	if stage.Stage == usecase.StageCompleted {
		return
	}
	r.pause(func() {
		fmt.Fprintf(r.out, "%s %s (%s)\n",
			color.New(color.FgGreen).Sprint("✓"),
			stage.Stage,
			stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
	})
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
