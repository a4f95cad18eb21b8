package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tip-time/internal/currency"
	"tip-time/internal/export"
	"tip-time/internal/format"
	"tip-time/internal/model"
	"tip-time/internal/tip"
)

// RunnerConfig holds all CLI options for a run.
type RunnerConfig struct {
	// Single tip
	AmountText string
	TipText    string
	TipSet     bool // false = -tip not given, use tip.DefaultPercent
	RoundUp    bool
	Locale     string

	// Batch
	BatchFile string

	// Output
	OutputCSV string
	OutputTXT string
	Verbose   bool
}

// NewFormatter returns a formatter for locale, or for the host locale when
// locale is empty.
func NewFormatter(locale string) (*currency.Formatter, error) {
	if locale == "" {
		return currency.System(), nil
	}
	f, err := currency.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale: %w", err)
	}
	return f, nil
}

// Compute parses the text inputs and runs the tip calculator. Unparsable
// text counts as 0; an unset percent uses tip.DefaultPercent.
func Compute(f *currency.Formatter, b Bill, now time.Time) model.Calculation {
	amount := tip.ParseInput(b.AmountText)

	var percent float64
	var formatted string
	if b.TipSet {
		percent = tip.ParseInput(b.TipText)
		formatted = tip.Calculate(f, amount, percent, b.RoundUp)
	} else {
		percent = tip.DefaultPercent
		formatted = tip.CalculateDefault(f, amount, b.RoundUp)
	}

	return model.Calculation{
		Timestamp:  now,
		Line:       b.Line,
		Locale:     f.Locale(),
		Currency:   f.Currency(),
		Amount:     amount,
		TipPercent: percent,
		RoundUp:    b.RoundUp,
		Tip:        tip.Amount(amount, percent, b.RoundUp),
		Formatted:  formatted,
	}
}

// SingleRunner computes one tip from the flag values and saves it if asked.
func SingleRunner(cfg RunnerConfig) (*model.Calculation, error) {
	f, err := NewFormatter(cfg.Locale)
	if err != nil {
		return nil, err
	}

	calc := Compute(f, Bill{
		AmountText: cfg.AmountText,
		TipText:    cfg.TipText,
		TipSet:     cfg.TipSet,
		RoundUp:    cfg.RoundUp,
	}, time.Now())

	slog.Debug("tip calculated",
		"amount", calc.Amount, "percent", calc.TipPercent,
		"round_up", calc.RoundUp, "locale", calc.Locale, "tip", calc.Formatted)

	if err := save(cfg, []model.Calculation{calc}, f); err != nil {
		return &calc, err
	}
	return &calc, nil
}

// BatchRunner computes a tip for every row of cfg.BatchFile.
func BatchRunner(cfg RunnerConfig) ([]model.Calculation, *currency.Formatter, error) {
	f, err := NewFormatter(cfg.Locale)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(cfg.BatchFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open batch file: %w", err)
	}
	defer file.Close()

	bills, err := ReadBills(file, cfg.RoundUp)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	calcs := make([]model.Calculation, 0, len(bills))
	for _, b := range bills {
		calcs = append(calcs, Compute(f, b, now))
	}

	slog.Debug("batch processed", "file", cfg.BatchFile, "rows", len(calcs), "locale", f.Locale())

	if err := save(cfg, calcs, f); err != nil {
		return calcs, f, err
	}
	return calcs, f, nil
}

func save(cfg RunnerConfig, calcs []model.Calculation, f tip.Formatter) error {
	now := time.Now()

	if path := export.ResolveOutput(cfg.OutputCSV, ".csv", now); path != "" {
		if err := export.EnsureDir(path); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteCSV(path, calcs); err != nil {
			return fmt.Errorf("save CSV: %w", err)
		}
		slog.Info("results saved", "path", path, "rows", len(calcs))
	}

	if path := export.ResolveOutput(cfg.OutputTXT, ".txt", now); path != "" {
		if err := export.EnsureDir(path); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteTXT(path, calcs, f); err != nil {
			return fmt.Errorf("save TXT: %w", err)
		}
		slog.Info("report saved", "path", path)
	}

	return nil
}

// PrintResult writes a single calculation: just the formatted tip, or the
// full block when verbose.
func PrintResult(w io.Writer, calc *model.Calculation, verbose bool) {
	if verbose {
		fmt.Fprintln(w, format.FormatCalculation(calc))
		return
	}
	fmt.Fprintln(w, calc.Formatted)
}

// PrintBatch writes one aligned row per calculation followed by totals.
func PrintBatch(w io.Writer, calcs []model.Calculation, f tip.Formatter) {
	fmt.Fprintln(w, format.FormatBatchHeader())
	for i := range calcs {
		fmt.Fprintln(w, format.FormatBatchRow(&calcs[i]))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, format.FormatSummary(model.Summarize(calcs), f))
}
