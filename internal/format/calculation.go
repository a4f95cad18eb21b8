package format

import (
	"fmt"
	"strings"

	"tip-time/internal/model"
	"tip-time/internal/tip"
)

// FormatTipLine returns the label shown under the inputs, e.g. "Tip Amount: $2.00".
func FormatTipLine(formatted string) string {
	return "Tip Amount: " + formatted
}

// FormatCalculation produces a human-readable block for a single calculation.
func FormatCalculation(c *model.Calculation) string {
	var b strings.Builder

	b.WriteString("=== Tip ===\n")
	if c.Line > 0 {
		b.WriteString(fmt.Sprintf("Line:            %d\n", c.Line))
	}
	if !c.Timestamp.IsZero() {
		b.WriteString(fmt.Sprintf("Timestamp:       %s\n", c.Timestamp.Format("2006-01-02 15:04:05")))
	}
	b.WriteString(fmt.Sprintf("Locale:          %s (%s)\n", c.Locale, c.Currency))
	b.WriteString(fmt.Sprintf("Bill Amount:     %.2f\n", c.Amount))
	b.WriteString(fmt.Sprintf("Tip Percent:     %g%%\n", c.TipPercent))

	roundUp := "no"
	switch {
	case c.Rounded():
		roundUp = "yes (tip raised)"
	case c.RoundUp:
		roundUp = "yes"
	}
	b.WriteString(fmt.Sprintf("Round Up:        %s\n", roundUp))
	b.WriteString(fmt.Sprintf("Tip:             %s\n", c.Formatted))
	b.WriteString(fmt.Sprintf("Total:           %.2f\n", c.Total()))
	b.WriteString("===========")
	return b.String()
}

// FormatSummary renders batch totals using f for the money columns.
func FormatSummary(s model.Summary, f tip.Formatter) string {
	var b strings.Builder
	b.WriteString("--- Summary ---\n")
	b.WriteString(fmt.Sprintf("Bills:           %d\n", s.Count))
	b.WriteString(fmt.Sprintf("Total Billed:    %s\n", f.Format(s.TotalBills)))
	b.WriteString(fmt.Sprintf("Total Tips:      %s", f.Format(s.TotalTips)))
	return b.String()
}

// FormatBatchHeader returns the column header for batch rows.
func FormatBatchHeader() string {
	return fmt.Sprintf("%-6s %12s %8s %6s %14s %12s", "Line", "Amount", "Tip %", "Round", "Tip", "Total")
}

// FormatBatchRow produces one aligned line for a batch calculation. The
// round column reads "up*" when rounding raised the tip.
func FormatBatchRow(c *model.Calculation) string {
	roundUp := "-"
	switch {
	case c.Rounded():
		roundUp = "up*"
	case c.RoundUp:
		roundUp = "up"
	}
	return fmt.Sprintf("%-6d %12.2f %8g %6s %14s %12.2f", c.Line, c.Amount, c.TipPercent, roundUp, c.Formatted, c.Total())
}
