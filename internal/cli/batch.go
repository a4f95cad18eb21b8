package cli

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Bill is one row of a batch file, still in text form.
type Bill struct {
	Line       int
	AmountText string
	TipText    string
	TipSet     bool // false = column missing or empty, use the default percent
	RoundUp    bool
}

// ReadBills parses a batch file with rows of amount[;tip_percent[;round_up]].
// The separator is ';' unless the first line holding a separator only
// contains ','; single-column rows before it do not fix the choice. A leading
// header row starting with "amount" and lines starting with '#' are skipped.
// Rows that cannot be parsed are logged and skipped; numeric text is left for
// the caller to parse.
func ReadBills(r io.Reader, defaultRoundUp bool) ([]Bill, error) {
	var bills []Bill
	var sep rune

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		comma := sep
		if comma == 0 {
			comma = detectSeparator(line)
			if strings.ContainsAny(line, ";,") {
				sep = comma
			}
		}

		rec := csv.NewReader(strings.NewReader(line))
		rec.Comma = comma
		rec.LazyQuotes = true
		rec.TrimLeadingSpace = true
		fields, err := rec.Read()
		if err != nil {
			slog.Warn("skipping malformed batch row", "line", lineNo, "err", err)
			continue
		}

		if len(bills) == 0 && isHeader(fields) {
			continue
		}

		bill := Bill{
			Line:       lineNo,
			AmountText: strings.TrimSpace(fields[0]),
			RoundUp:    defaultRoundUp,
		}
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			bill.TipText = strings.TrimSpace(fields[1])
			bill.TipSet = true
		}
		if len(fields) > 2 {
			if v, ok := parseBool(fields[2]); ok {
				bill.RoundUp = v
			}
		}
		bills = append(bills, bill)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	return bills, nil
}

func detectSeparator(line string) rune {
	if !strings.ContainsRune(line, ';') && strings.ContainsRune(line, ',') {
		return ','
	}
	return ';'
}

func isHeader(fields []string) bool {
	return strings.EqualFold(strings.TrimSpace(fields[0]), "amount")
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
