package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/kcaldas/dbgconsole/pkg/keys"
)

var (
	modCtrl = gocui.Modifier(tcell.ModCtrl)
	modAlt  = gocui.Modifier(tcell.ModAlt)
)

// TranslateKey maps a terminal key event to a console key. ok is false for
// keys the console has no use for, including plain characters.
func TranslateKey(key gocui.Key, ch rune, mod gocui.Modifier) (keys.Key, keys.Modifiers, bool) {
	if ch != 0 {
		return keys.Unknown, keys.None, false
	}

	mods := keys.Modifiers{
		Ctrl: mod&modCtrl != 0,
		Alt:  mod&modAlt != 0,
	}

	switch key {
	case gocui.KeyArrowUp:
		return keys.Up, mods, true
	case gocui.KeyArrowDown:
		return keys.Down, mods, true
	case gocui.KeyArrowLeft:
		return keys.Left, mods, true
	case gocui.KeyArrowRight:
		return keys.Right, mods, true
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		return keys.Backspace, mods, true
	case gocui.KeyHome:
		return keys.Home, mods, true
	case gocui.KeyEnd:
		return keys.End, mods, true
	case gocui.KeyEnter:
		return keys.Enter, mods, true
	case gocui.KeyPgup:
		return keys.PageUp, mods, true
	case gocui.KeyPgdn:
		return keys.PageDown, mods, true

	// readline bindings
	case gocui.KeyCtrlA:
		return keys.Home, keys.None, true
	case gocui.KeyCtrlE:
		return keys.End, keys.None, true
	case gocui.KeyCtrlW:
		return keys.Backspace, keys.WithCtrl, true
	}

	return keys.Unknown, keys.None, false
}

// printable returns the character a key event types, if any.
func printable(key gocui.Key, ch rune, mod gocui.Modifier) (rune, bool) {
	if mod&(modCtrl|modAlt) != 0 {
		return 0, false
	}
	if ch != 0 {
		return ch, true
	}
	if key == gocui.KeySpace {
		return ' ', true
	}
	return 0, false
}
