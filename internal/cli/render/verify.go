package render

import (
	"fmt"
	"io"

	"github.com/piggywatt/pgw-cli/internal/usecase"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render prints the verified contract and its explorer page
func (r *VerifyRenderer) Render(result *usecase.VerifyResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s verified on %s", result.Contract, result.Explorer)))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(result.Address.Hex()))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Network:"), result.Network)
	if result.ExplorerURL != "" {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Explorer:"), result.ExplorerURL)
	}
	return nil
}

var _ Renderer[*usecase.VerifyResult] = (*VerifyRenderer)(nil)
