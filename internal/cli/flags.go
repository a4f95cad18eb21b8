package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("tip-time", flag.ContinueOnError)

	// Calculation flags
	fs.StringVar(&cfg.AmountText, "a", "", "Bill amount")
	fs.StringVar(&cfg.AmountText, "amount", "", "Bill amount")
	fs.StringVar(&cfg.TipText, "t", "", "Tip percentage (default 15)")
	fs.StringVar(&cfg.TipText, "tip", "", "Tip percentage (default 15)")
	fs.BoolVar(&cfg.RoundUp, "r", false, "Round the tip up to a whole unit")
	fs.BoolVar(&cfg.RoundUp, "round", false, "Round the tip up to a whole unit")
	fs.StringVar(&cfg.Locale, "l", "", "Locale for currency formatting (default: system)")
	fs.StringVar(&cfg.Locale, "locale", "", "Locale for currency formatting (default: system)")

	// Batch flags
	fs.StringVar(&cfg.BatchFile, "batch", "", "CSV file of bills to process")

	// Output flags
	fs.StringVar(&cfg.OutputCSV, "o", "", "Append results to CSV file or directory")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Append results to CSV file or directory")
	fs.StringVar(&cfg.OutputTXT, "txt", "", "Write a text report")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	amountSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t", "tip":
			cfg.TipSet = true
		case "a", "amount":
			amountSet = true
		}
	})

	// Validate: must have either an amount or a batch file
	if !amountSet && cfg.BatchFile == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -amount <value> or -batch <file>\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}
	if amountSet && cfg.BatchFile != "" {
		return nil, fmt.Errorf("-amount and -batch are mutually exclusive")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Tip Time

Usage: tip-time [flags]
       tip-time help    (show this message)
       tip-time         (no flags: open the calculator window)

SINGLE TIP:
  -a, -amount <value>      Bill amount (invalid text counts as 0)
  -t, -tip <percent>       Tip percentage (default: 15)
  -r, -round               Round the tip up to the next whole unit
  -l, -locale <tag>        Locale, e.g. en-US, de_DE (default: system)

BATCH:
  -batch <file.csv>        Rows of amount[;tip_percent[;round_up]]

OUTPUT:
  -o, -output <file|dir>   Append results to CSV
  -txt <file>              Write a text report
  -v, -verbose             Verbose output

ENVIRONMENT:
  TIPTIME_LOCALE           Default locale (overridden by -locale)
  TIPTIME_LOG_LEVEL        debug, info, warn, error (default: info)

EXAMPLES:
  # 20%% of 10.00
  tip-time -a 10 -t 20

  # Default 15%%, rounded up, euro formatting
  tip-time -a 10 -r -l de-DE

  # Batch file with CSV output
  tip-time -batch bills.csv -o results/ -v

`)
}
