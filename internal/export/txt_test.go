package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type plainFormatter struct{}

func (plainFormatter) Format(v float64) string { return fmt.Sprintf("$%.2f", v) }

func TestWriteTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tips.txt")

	if err := WriteTXT(path, sampleCalculations(), plainFormatter{}); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file error: %v", err)
	}

	content := string(data)

	if strings.Count(content, "=== Tip ===") != 2 {
		t.Errorf("expected 2 tip blocks, got %d", strings.Count(content, "=== Tip ==="))
	}
	if !strings.Contains(content, "Line:            3") {
		t.Error("missing batch line number")
	}
	if !strings.Contains(content, "--- Summary ---") {
		t.Error("missing summary for multiple calculations")
	}
	if !strings.Contains(content, "Total Tips:      $4.00") {
		t.Error("missing total tips")
	}
}

func TestWriteTXTSingleHasNoSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.txt")

	if err := WriteTXT(path, sampleCalculations()[:1], plainFormatter{}); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file error: %v", err)
	}
	if strings.Contains(string(data), "Summary") {
		t.Error("single calculation should not get a summary")
	}
}

func TestWriteTXTEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")

	if err := WriteTXT(path, nil, plainFormatter{}); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file error: %v", err)
	}

	if len(data) != 1 || data[0] != '\n' {
		t.Errorf("expected single newline for empty results, got %d bytes", len(data))
	}
}
