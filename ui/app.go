package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tip-time/internal/tip"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, f tip.Formatter) fyne.Window {
	win := app.NewWindow(WindowTitle)
	win.Resize(NewWindowSize())

	calc := NewCalculatorForm(f, win.Canvas())

	win.SetContent(container.NewPadded(calc.Container()))
	win.Canvas().Focus(calc.amountEntry)

	return win
}
