package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/piggywatt/pgw-cli/internal/domain"
)

// TokenRenderer prints token reads and owner operations
type TokenRenderer struct {
	out io.Writer
}

// NewTokenRenderer creates a new token renderer
func NewTokenRenderer(out io.Writer) *TokenRenderer {
	return &TokenRenderer{out: out}
}

// RenderInfo prints a token snapshot
func (r *TokenRenderer) RenderInfo(info *domain.TokenInfo) error {
	fmt.Fprintln(r.out, sectionStyle.Sprint("=== Contract Information ==="))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(info.Address.Hex()))
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Network chain ID:"), info.ChainID)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Token name:"), info.Token.Name)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Token symbol:"), info.Token.Symbol)
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Decimal places:"), info.Token.Decimals)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Owner:"), addressStyle.Sprint(info.Owner.Hex()))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total supply:"), info.TotalSupply)
	return nil
}

// RenderChange prints a mint, burn or issue with its balance delta
func (r *TokenRenderer) RenderChange(change *domain.BalanceChange) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s confirmed in block %d", change.Operation, change.Receipt.BlockNumber)))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Transaction:"), change.Receipt.Hash.Hex())
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Gas used:"), formatGas(change.Receipt.GasUsed))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Account:"), addressStyle.Sprint(change.Account.Hex()))
	fmt.Fprintf(r.out, "%s %s -> %s (%s)\n", labelStyle.Sprint("Balance:"),
		change.BalanceBefore, change.BalanceAfter, signed(change.Delta().String()))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total supply:"), change.TotalSupplyAfter)
	return nil
}

// RenderBatch prints a batch issue, one row per distinct recipient
func (r *TokenRenderer) RenderBatch(result *domain.BatchIssueResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("batchIssuePoints confirmed in block %d", result.Receipt.BlockNumber)))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Transaction:"), result.Receipt.Hash.Hex())
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Gas used:"), formatGas(result.Receipt.GasUsed))
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"RECIPIENT", "ISSUED", "BEFORE", "AFTER"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, e := range result.Entries {
		t.AppendRow(table.Row{e.Account.Hex(), e.Amount, e.BalanceBefore, e.BalanceAfter})
	}
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total issued:"), result.TotalIssued)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total supply:"), result.TotalSupplyAfter)
	return nil
}

// RenderBalance prints balanceOf and totalSupply
func (r *TokenRenderer) RenderBalance(info *domain.BalanceInfo) error {
	fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("Balance:"), info.Balance, info.Symbol)
	fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("Total supply:"), info.TotalSupply, info.Symbol)
	return nil
}

// RenderIssueSummary prints the points script summary
func (r *TokenRenderer) RenderIssueSummary(summary *domain.IssuePointsSummary) error {
	fmt.Fprintf(r.out, "Issuing %s points to %s, %d times\n", summary.Amount, addressStyle.Sprint(summary.Target.Hex()), summary.Count)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Initial balance:"), summary.InitialBalance)
	fmt.Fprintln(r.out)

	for _, step := range summary.Steps {
		fmt.Fprintf(r.out, "  [%d/%d] %s  gas %s  balance %s\n",
			step.Index, summary.Count, faintStyle.Sprint(step.TxHash.Hex()), formatGas(step.GasUsed), step.BalanceAfter)
	}

	if summary.Batch != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  [batch] %s  gas %s  issued %s\n",
			faintStyle.Sprint(summary.Batch.Receipt.Hash.Hex()), formatGas(summary.Batch.Receipt.GasUsed), summary.Batch.TotalIssued)
	}

	fmt.Fprintln(r.out, section("Summary"))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Final balance:"), summary.FinalBalance)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total supply:"), summary.TotalSupply)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Total gas:"), formatGas(summary.TotalGas))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Average gas per issue:"), formatGas(summary.AverageGas))
	return nil
}

func signed(delta string) string {
	if len(delta) > 0 && delta[0] != '-' {
		return "+" + delta
	}
	return delta
}
