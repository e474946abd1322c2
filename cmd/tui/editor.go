package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/dbgconsole/pkg/keys"
)

// LineEditor is the part of a console the input view drives.
type LineEditor interface {
	HandleCharacter(r rune) bool
	HandleKey(key keys.Key, mods keys.Modifiers) bool
}

// ConsoleEditor is a gocui.Editor forwarding key events to a console instead
// of editing the view buffer. The view is redrawn from the console state.
type ConsoleEditor struct {
	target   LineEditor
	onChange func()
}

var _ gocui.Editor = (*ConsoleEditor)(nil)

// NewConsoleEditor creates an editor driving target. onChange runs after every
// event that changed the console.
func NewConsoleEditor(target LineEditor, onChange func()) *ConsoleEditor {
	return &ConsoleEditor{target: target, onChange: onChange}
}

func (e *ConsoleEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if e.handle(key, ch, mod) && e.onChange != nil {
		e.onChange()
	}
}

func (e *ConsoleEditor) handle(key gocui.Key, ch rune, mod gocui.Modifier) bool {
	if r, ok := printable(key, ch, mod); ok {
		return e.target.HandleCharacter(r)
	}

	k, mods, ok := TranslateKey(key, ch, mod)
	if !ok {
		return false
	}
	return e.target.HandleKey(k, mods)
}

// Paste types text into target. Line breaks and tabs become spaces, other
// control characters are dropped.
func Paste(target LineEditor, text string) bool {
	changed := false
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			r = ' '
		case r < ' ' || r == 0x7f:
			continue
		}
		changed = target.HandleCharacter(r) || changed
	}
	return changed
}
