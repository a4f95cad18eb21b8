package export

import (
	"fmt"
	"os"
	"strings"

	"tip-time/internal/format"
	"tip-time/internal/model"
	"tip-time/internal/tip"
)

// WriteTXT writes calculations to a text file using formatted output,
// followed by a totals block when there is more than one calculation.
func WriteTXT(path string, calcs []model.Calculation, f tip.Formatter) error {
	var b strings.Builder
	for i, c := range calcs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(format.FormatCalculation(&c))
	}
	if len(calcs) > 1 {
		b.WriteString("\n\n")
		b.WriteString(format.FormatSummary(model.Summarize(calcs), f))
	}
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
