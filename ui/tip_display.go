package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"tip-time/internal/format"
)

// tipDisplay shows the "Tip Amount: ..." line. Its text can be selected and
// copied but never edited.
type tipDisplay struct {
	widget.Entry
	formatted string
}

func newTipDisplay() *tipDisplay {
	d := &tipDisplay{}
	d.TextStyle = fyne.TextStyle{Bold: true}
	d.ExtendBaseWidget(d)
	return d
}

// show replaces the displayed tip.
func (d *tipDisplay) show(formatted string) {
	d.formatted = formatted
	d.SetText(format.FormatTipLine(formatted))
}

// TypedRune drops all character input.
func (d *tipDisplay) TypedRune(rune) {}

// TypedKey passes cursor movement through and drops everything else.
func (d *tipDisplay) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyHome, fyne.KeyEnd:
		d.Entry.TypedKey(ev)
	}
}

// TypedShortcut allows copy and select-all only.
func (d *tipDisplay) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		d.Entry.TypedShortcut(s)
	}
}
