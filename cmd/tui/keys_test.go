package tui

import (
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/dbgconsole/pkg/keys"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		key      gocui.Key
		ch       rune
		mod      gocui.Modifier
		wantKey  keys.Key
		wantMods keys.Modifiers
		wantOK   bool
	}{
		{"up", gocui.KeyArrowUp, 0, gocui.ModNone, keys.Up, keys.None, true},
		{"down", gocui.KeyArrowDown, 0, gocui.ModNone, keys.Down, keys.None, true},
		{"left", gocui.KeyArrowLeft, 0, gocui.ModNone, keys.Left, keys.None, true},
		{"ctrl right", gocui.KeyArrowRight, 0, modCtrl, keys.Right, keys.WithCtrl, true},
		{"alt left", gocui.KeyArrowLeft, 0, modAlt, keys.Left, keys.Modifiers{Alt: true}, true},
		{"backspace", gocui.KeyBackspace, 0, gocui.ModNone, keys.Backspace, keys.None, true},
		{"backspace2", gocui.KeyBackspace2, 0, gocui.ModNone, keys.Backspace, keys.None, true},
		{"home", gocui.KeyHome, 0, gocui.ModNone, keys.Home, keys.None, true},
		{"end", gocui.KeyEnd, 0, gocui.ModNone, keys.End, keys.None, true},
		{"enter", gocui.KeyEnter, 0, gocui.ModNone, keys.Enter, keys.None, true},
		{"page up", gocui.KeyPgup, 0, gocui.ModNone, keys.PageUp, keys.None, true},
		{"page down", gocui.KeyPgdn, 0, gocui.ModNone, keys.PageDown, keys.None, true},
		{"ctrl a", gocui.KeyCtrlA, 0, modCtrl, keys.Home, keys.None, true},
		{"ctrl e", gocui.KeyCtrlE, 0, modCtrl, keys.End, keys.None, true},
		{"ctrl w", gocui.KeyCtrlW, 0, modCtrl, keys.Backspace, keys.WithCtrl, true},
		{"character", 0, 'x', gocui.ModNone, keys.Unknown, keys.None, false},
		{"function key", gocui.KeyF5, 0, gocui.ModNone, keys.Unknown, keys.None, false},
		{"tab", gocui.KeyTab, 0, gocui.ModNone, keys.Unknown, keys.None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, mods, ok := TranslateKey(tt.key, tt.ch, tt.mod)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantMods, mods)
		})
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		name   string
		key    gocui.Key
		ch     rune
		mod    gocui.Modifier
		want   rune
		wantOK bool
	}{
		{"letter", 0, 'a', gocui.ModNone, 'a', true},
		{"wide rune", 0, '漢', gocui.ModNone, '漢', true},
		{"space key", gocui.KeySpace, 0, gocui.ModNone, ' ', true},
		{"alt letter", 0, 'b', modAlt, 0, false},
		{"arrow", gocui.KeyArrowLeft, 0, gocui.ModNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := printable(tt.key, tt.ch, tt.mod)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, r)
		})
	}
}
