package model

import "time"

// Calculation holds the inputs and outcome of a single tip computation.
type Calculation struct {
	Timestamp  time.Time
	Line       int    // source row in batch mode; 0 = single run
	Locale     string // BCP 47 tag the tip was formatted for
	Currency   string // ISO 4217 code, e.g. "USD"
	Amount     float64
	TipPercent float64
	RoundUp    bool
	Tip        float64 // numeric tip after optional rounding
	Formatted  string  // locale-formatted tip
}

// Total returns the bill amount plus the tip.
func (c *Calculation) Total() float64 {
	return c.Amount + c.Tip
}

// Rounded reports whether rounding changed the tip.
func (c *Calculation) Rounded() bool {
	return c.RoundUp && c.Tip != c.TipPercent/100*c.Amount
}

// Summary aggregates a batch of calculations.
type Summary struct {
	Count      int
	TotalBills float64
	TotalTips  float64
}

// Summarize totals the given calculations.
func Summarize(calcs []Calculation) Summary {
	s := Summary{Count: len(calcs)}
	for _, c := range calcs {
		s.TotalBills += c.Amount
		s.TotalTips += c.Tip
	}
	return s
}
