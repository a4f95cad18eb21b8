package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tip-time/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"line",
	"locale",
	"currency",
	"amount",
	"tip_percent",
	"round_up",
	"tip",
	"formatted_tip",
}

// WriteCSV writes calculations to a CSV file (semicolon-separated), creating
// it with headers if it doesn't exist, or appending rows if it does.
func WriteCSV(path string, calcs []model.Calculation) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, c := range calcs {
		line := ""
		if c.Line > 0 {
			line = strconv.Itoa(c.Line)
		}

		row := []string{
			c.Timestamp.Format("02.01.2006"),
			c.Timestamp.Format("15:04:05"),
			line,
			c.Locale,
			c.Currency,
			strconv.FormatFloat(c.Amount, 'f', -1, 64),
			strconv.FormatFloat(c.TipPercent, 'f', -1, 64),
			roundUpField(c.RoundUp),
			strconv.FormatFloat(c.Tip, 'f', -1, 64),
			c.Formatted,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func roundUpField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
