package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints the profile table; the selected network is marked with *
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"", "NETWORK", "CHAIN ID", "CONFIRMATIONS", "SIGNER", "EXPLORER"})

	for _, network := range result.Networks {
		marker := ""
		if network.Name == result.Current {
			marker = "*"
		}

		if network.Error != nil {
			t.AppendRow(table.Row{marker, network.Name, color.New(color.FgRed).Sprintf("error: %v", network.Error)})
			continue
		}

		name := network.Name
		switch {
		case network.Local:
			name += faintStyle.Sprint(" (local)")
		case network.Mainnet:
			name += color.New(color.FgYellow).Sprint(" (mainnet)")
		}

		signer := color.New(color.FgGreen).Sprint("✓")
		if !network.HasSigner {
			signer = color.New(color.FgRed).Sprint("✗")
		}

		explorer := network.ExplorerURL
		if explorer == "" {
			explorer = faintStyle.Sprint("-")
		}

		t.AppendRow(table.Row{marker, name, network.ChainID, network.Confirmations, signer, explorer})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// newTable returns a borderless table writer
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	return t
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
