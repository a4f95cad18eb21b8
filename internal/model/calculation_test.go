package model

import "testing"

func TestCalculationTotal(t *testing.T) {
	c := Calculation{Amount: 10, TipPercent: 15, RoundUp: true, Tip: 2}
	if got := c.Total(); got != 12 {
		t.Errorf("Total() = %v, want 12", got)
	}
	if !c.Rounded() {
		t.Error("Rounded() = false, want true for 1.5 rounded to 2")
	}
}

func TestCalculationRounded_NoChange(t *testing.T) {
	c := Calculation{Amount: 10, TipPercent: 20, RoundUp: true, Tip: 2}
	if c.Rounded() {
		t.Error("Rounded() = true, want false when tip is already whole")
	}
	c.RoundUp = false
	if c.Rounded() {
		t.Error("Rounded() = true, want false without round-up")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Calculation{
		{Amount: 10, Tip: 2},
		{Amount: 40, Tip: 6},
	})
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.TotalBills != 50 {
		t.Errorf("TotalBills = %v, want 50", s.TotalBills)
	}
	if s.TotalTips != 8 {
		t.Errorf("TotalTips = %v, want 8", s.TotalTips)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := Summarize(nil); s.Count != 0 || s.TotalTips != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}
