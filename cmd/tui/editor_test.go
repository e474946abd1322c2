package tui

import (
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/dbgconsole/pkg/console"
	"github.com/kcaldas/dbgconsole/pkg/interpreter"
	"github.com/stretchr/testify/assert"
)

func newTestConsole() *console.Console {
	return console.New(console.Options{
		HistoryCapacity: 5,
		OutputCapacity:  5,
		Interpreter: interpreter.New(interpreter.NewFunc("echo", "", func(args []string) string {
			return "echoed"
		})),
	})
}

func TestConsoleEditor_Edit(t *testing.T) {
	cons := newTestConsole()
	changes := 0
	ed := NewConsoleEditor(cons, func() { changes++ })

	for _, r := range "echo one" {
		ed.Edit(nil, 0, r, gocui.ModNone)
	}
	assert.Equal(t, "echo one", cons.CurrentLine())

	ed.Edit(nil, gocui.KeyArrowLeft, 0, modCtrl)
	assert.Equal(t, 5, cons.CaretPosition())

	ed.Edit(nil, gocui.KeyEnter, 0, gocui.ModNone)
	assert.Equal(t, "", cons.CurrentLine())
	out, _ := cons.MostRecentOutput(0)
	assert.Equal(t, "echoed", out)

	ed.Edit(nil, gocui.KeyArrowUp, 0, gocui.ModNone)
	assert.Equal(t, "echo one", cons.CurrentLine())

	assert.Equal(t, 11, changes)
}

func TestConsoleEditor_UnchangedEventsDoNotNotify(t *testing.T) {
	cons := newTestConsole()
	changes := 0
	ed := NewConsoleEditor(cons, func() { changes++ })

	ed.Edit(nil, gocui.KeyArrowLeft, 0, gocui.ModNone)
	ed.Edit(nil, gocui.KeyEnter, 0, gocui.ModNone)
	ed.Edit(nil, gocui.KeyF1, 0, gocui.ModNone)

	assert.Equal(t, 0, changes)
}

func TestPaste(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "echo hi", "echo hi"},
		{"line breaks become spaces", "echo\r\nhi", "echo  hi"},
		{"tab becomes space", "a\tb", "a b"},
		{"control characters dropped", "a\x1b\x07b", "ab"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cons := newTestConsole()
			changed := Paste(cons, tt.text)
			assert.Equal(t, tt.want, cons.CurrentLine())
			assert.Equal(t, tt.want != "", changed)
		})
	}
}
