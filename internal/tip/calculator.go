package tip

import "math"

// DefaultPercent is the tip rate used when none is given.
const DefaultPercent = 15.0

// Formatter renders a tip as a currency string.
type Formatter interface {
	Format(v float64) string
}

// Amount returns tipPercent percent of amount. With roundUp set the result
// is raised to the next whole currency unit, not the next minor unit.
// Negative inputs are accepted as-is.
func Amount(amount, tipPercent float64, roundUp bool) float64 {
	tip := tipPercent / 100 * amount
	if roundUp {
		tip = math.Ceil(tip)
	}
	return tip
}

// Calculate computes the tip and formats it with f.
func Calculate(f Formatter, amount, tipPercent float64, roundUp bool) string {
	return f.Format(Amount(amount, tipPercent, roundUp))
}

// CalculateDefault is Calculate with DefaultPercent.
func CalculateDefault(f Formatter, amount float64, roundUp bool) string {
	return Calculate(f, amount, DefaultPercent, roundUp)
}
