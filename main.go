package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"tip-time/internal/cli"
	"tip-time/internal/config"
	"tip-time/internal/logging"
	"tip-time/ui"
)

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(logging.ParseLevel(env.LogLevel))

	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return // help was printed
		}
		if err := runGUI(env); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Locale == "" {
		cfg.Locale = env.Locale
	}
	if cfg.Verbose {
		logging.Setup(slog.LevelDebug)
	}

	// CLI mode
	if err := runCLI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(env *config.Config) error {
	f, err := cli.NewFormatter(env.Locale)
	if err != nil {
		return err
	}
	slog.Debug("starting GUI", "locale", f.Locale(), "currency", f.Currency())

	a := app.NewWithID(env.AppID)
	win := ui.BuildMainWindow(a, f)
	win.ShowAndRun()
	return nil
}

func runCLI(cfg *cli.RunnerConfig) error {
	if cfg.BatchFile != "" {
		calcs, f, err := cli.BatchRunner(*cfg)
		if err != nil {
			return err
		}
		cli.PrintBatch(os.Stdout, calcs, f)
		return nil
	}

	calc, err := cli.SingleRunner(*cfg)
	if err != nil {
		return err
	}
	cli.PrintResult(os.Stdout, calc, cfg.Verbose)
	return nil
}
