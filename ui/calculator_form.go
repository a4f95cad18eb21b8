package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tip-time/internal/tip"
)

// CalculatorForm holds the bill and tip inputs and shows the computed tip.
// Every input change re-runs tip.Calculate.
type CalculatorForm struct {
	formatter tip.Formatter
	canvas    fyne.Canvas

	amountEntry  *widget.Entry
	tipEntry     *widget.Entry
	roundUpCheck *widget.Check
	result       *tipDisplay

	form *fyne.Container
}

// NewCalculatorForm creates the calculator inputs. canvas is used to move
// focus when Enter is pressed; it may be nil.
func NewCalculatorForm(f tip.Formatter, canvas fyne.Canvas) *CalculatorForm {
	cf := &CalculatorForm{formatter: f, canvas: canvas}

	cf.amountEntry = widget.NewEntry()
	cf.amountEntry.SetPlaceHolder("0.00")

	cf.tipEntry = widget.NewEntry()
	cf.tipEntry.SetPlaceHolder("0")

	cf.roundUpCheck = widget.NewCheck(RoundUpLabel, nil)
	cf.result = newTipDisplay()

	cf.amountEntry.OnChanged = func(string) { cf.recalculate() }
	cf.tipEntry.OnChanged = func(string) { cf.recalculate() }
	cf.roundUpCheck.OnChanged = func(bool) { cf.recalculate() }

	cf.amountEntry.OnSubmitted = func(string) {
		if cf.canvas != nil {
			cf.canvas.Focus(cf.tipEntry)
		}
	}
	cf.tipEntry.OnSubmitted = func(string) {
		if cf.canvas != nil {
			cf.canvas.Unfocus()
		}
	}

	heading := widget.NewLabelWithStyle(HeadingText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	cf.form = container.NewVBox(
		heading,
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(AmountLabel, cf.amountEntry),
			widget.NewFormItem(TipLabel, cf.tipEntry),
		),
		cf.roundUpCheck,
		widget.NewSeparator(),
		cf.result,
	)

	cf.recalculate()
	return cf
}

// Container returns the form's Fyne container.
func (cf *CalculatorForm) Container() *fyne.Container {
	return cf.form
}

// Tip returns the currently displayed formatted tip without its label.
func (cf *CalculatorForm) Tip() string {
	return cf.result.formatted
}

// recalculate parses both inputs (invalid text counts as 0) and refreshes
// the result.
func (cf *CalculatorForm) recalculate() {
	amount := tip.ParseInput(cf.amountEntry.Text)
	percent := tip.ParseInput(cf.tipEntry.Text)
	cf.result.show(tip.Calculate(cf.formatter, amount, percent, cf.roundUpCheck.Checked))
}
