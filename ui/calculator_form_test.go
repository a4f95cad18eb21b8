package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tip-time/internal/currency"
)

func newTestForm(t *testing.T) (*CalculatorForm, fyne.Window) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow(WindowTitle)
	cf := NewCalculatorForm(currency.New(language.AmericanEnglish), w.Canvas())
	w.SetContent(cf.Container())
	return cf, w
}

func TestCalculatorForm_InitialTipIsZero(t *testing.T) {
	cf, _ := newTestForm(t)
	assert.Equal(t, "$0.00", cf.Tip())
	assert.Equal(t, "Tip Amount: $0.00", cf.result.Text)
}

func TestCalculatorForm_TipPlaceholderMatchesEmptyValue(t *testing.T) {
	cf, _ := newTestForm(t)
	assert.Equal(t, "0", cf.tipEntry.PlaceHolder)
}

func TestCalculatorForm_20PercentNoRoundup(t *testing.T) {
	cf, _ := newTestForm(t)

	test.Type(cf.amountEntry, "10")
	test.Type(cf.tipEntry, "20")

	assert.Equal(t, "$2.00", cf.Tip())
	assert.Equal(t, "Tip Amount: $2.00", cf.result.Text)
}

func TestCalculatorForm_RoundUpToggle(t *testing.T) {
	cf, _ := newTestForm(t)

	test.Type(cf.amountEntry, "10")
	test.Type(cf.tipEntry, "15")
	assert.Equal(t, "$1.50", cf.Tip())

	cf.roundUpCheck.SetChecked(true)
	assert.Equal(t, "$2.00", cf.Tip())

	cf.roundUpCheck.SetChecked(false)
	assert.Equal(t, "$1.50", cf.Tip())
}

func TestCalculatorForm_EmptyTipIsZeroPercent(t *testing.T) {
	cf, _ := newTestForm(t)

	test.Type(cf.amountEntry, "10")

	assert.Equal(t, "$0.00", cf.Tip())
}

func TestCalculatorForm_InvalidInputCountsAsZero(t *testing.T) {
	cf, _ := newTestForm(t)

	test.Type(cf.amountEntry, "ten")
	test.Type(cf.tipEntry, "20")
	assert.Equal(t, "$0.00", cf.Tip())

	cf.amountEntry.SetText("50")
	assert.Equal(t, "$10.00", cf.Tip())
}

func TestCalculatorForm_ResultRejectsTyping(t *testing.T) {
	cf, _ := newTestForm(t)
	before := cf.Tip()

	text := cf.result.Text

	cf.result.TypedRune('9')
	cf.result.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	cf.result.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	cf.result.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	cf.result.TypedShortcut(&fyne.ShortcutPaste{})
	cf.result.TypedShortcut(&fyne.ShortcutCut{})

	assert.Equal(t, before, cf.Tip())
	assert.Equal(t, text, cf.result.Text)
}

func TestCalculatorForm_EnterMovesFocus(t *testing.T) {
	cf, w := newTestForm(t)
	c := w.Canvas()

	c.Focus(cf.amountEntry)
	require.Equal(t, fyne.Focusable(cf.amountEntry), c.Focused())

	cf.amountEntry.OnSubmitted(cf.amountEntry.Text)
	assert.Equal(t, fyne.Focusable(cf.tipEntry), c.Focused())

	cf.tipEntry.OnSubmitted(cf.tipEntry.Text)
	assert.Nil(t, c.Focused())
}

func TestBuildMainWindow(t *testing.T) {
	a := test.NewTempApp(t)
	w := BuildMainWindow(a, currency.New(language.AmericanEnglish))

	assert.Equal(t, WindowTitle, w.Title())
	assert.NotNil(t, w.Content())
}
