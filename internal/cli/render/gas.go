package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/piggywatt/pgw-cli/internal/adapters/gasreport"
)

// GasRenderer prints the gas report collected during a command
type GasRenderer struct {
	out io.Writer
}

// NewGasRenderer creates a new gas renderer
func NewGasRenderer(out io.Writer) *GasRenderer {
	return &GasRenderer{out: out}
}

// Render prints one row per operation. Nothing is printed for an empty report.
func (r *GasRenderer) Render(summary []gasreport.OperationGas) error {
	if len(summary) == 0 {
		return nil
	}

	fmt.Fprintln(r.out, section("Gas Report"))

	t := newTable()
	t.AppendHeader(table.Row{"OPERATION", "CALLS", "MIN", "MAX", "AVG", "TOTAL"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, op := range summary {
		t.AppendRow(table.Row{
			op.Operation,
			op.Calls,
			formatGas(op.Min),
			formatGas(op.Max),
			formatGas(op.Avg),
			formatGas(op.Total),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[[]gasreport.OperationGas] = (*GasRenderer)(nil)
