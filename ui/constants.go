package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 360
	WindowHeight = 420
)

// Labels
const (
	WindowTitle  = "Tip Time"
	HeadingText  = "Calculate Tip"
	AmountLabel  = "Bill Amount"
	TipLabel     = "How was the service? (%)"
	RoundUpLabel = "Round up tip?"
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
