package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/kcaldas/dbgconsole/pkg/session"
)

// App is the terminal front end of a console session.
type App struct {
	gui       *gocui.Gui
	session   *session.Session
	clipboard Clipboard
	editor    *ConsoleEditor
	output    *outputPane
	logger    logging.Logger

	keybindingsSetup bool
}

// Run shows s in the terminal until the user quits.
func Run(s *session.Session) error {
	app, err := New(s, SystemClipboard())
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Start()
}

// New creates the terminal UI. The caller must Close it.
func New(s *session.Session, cb Clipboard) (*App, error) {
	g, err := gocui.NewGui(gocui.OutputTrue, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal UI: %w", err)
	}

	app := &App{
		gui:       g,
		session:   s,
		clipboard: cb,
		editor:    NewConsoleEditor(s.Console(), nil),
		output:    newOutputPane(),
		logger:    logging.NewSessionLogger("tui", s.ID()),
	}

	g.Cursor = true
	g.SetManagerFunc(app.layout)

	return app, nil
}

// Start runs the main loop. Quitting is not an error.
func (a *App) Start() error {
	a.logger.Debug("terminal UI started")
	err := a.gui.MainLoop()
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// Close restores the terminal.
func (a *App) Close() {
	a.gui.Close()
}

func (a *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	outputHeight := 0
	for name, dims := range arrangeViews(maxX, maxY) {
		if dims.X1-dims.X0 < 2 || dims.Y1-dims.Y0 < 2 {
			continue
		}

		v, err := g.SetView(name, dims.X0, dims.Y0, dims.X1, dims.Y1, 0)
		if err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			a.configureView(v)
		}

		if name == OutputView {
			outputHeight = innerHeight(dims)
		}
	}

	if !a.keybindingsSetup {
		if _, err := g.SetCurrentView(InputView); err != nil {
			// The terminal is too small for the input view; try again on resize.
			return nil
		}
		if err := a.setupKeybindings(); err != nil {
			return err
		}
		a.keybindingsSetup = true
	}

	a.renderOutput(outputHeight)
	a.renderInput()
	return nil
}

func (a *App) configureView(v *gocui.View) {
	v.Frame = true
	switch v.Name() {
	case OutputView:
		v.Title = " output "
		v.Wrap = false
	case InputView:
		v.Title = " " + a.session.ID()[:8] + " "
		v.Editable = true
		v.Editor = a.editor
	}
}

func (a *App) renderOutput(height int) {
	v, err := a.gui.View(OutputView)
	if err != nil {
		return
	}

	tr := a.session.Transcript()
	lines := tr.Lines(a.session.Prompt())
	first := a.output.sync(len(lines), tr.Version(), height)

	v.Clear()
	fmt.Fprint(v, strings.Join(lines, "\n"))
	if err := v.SetOrigin(0, first); err != nil {
		a.logger.Debug("failed to scroll output view", "error", err)
	}
}

func (a *App) renderInput() {
	v, err := a.gui.View(InputView)
	if err != nil {
		return
	}

	cons := a.session.Console()
	prompt := a.session.Prompt()
	line := cons.CurrentLine()

	v.Clear()
	fmt.Fprint(v, prompt+line)

	width, _ := v.Size()
	col := caretColumn(prompt, line, cons.CaretPosition())
	ox := max(col-width+1, 0)
	v.SetOrigin(ox, 0)
	v.SetCursor(col-ox, 0)
}

func (a *App) setupKeybindings() error {
	bindings := []struct {
		view    string
		key     gocui.Key
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{"", gocui.KeyCtrlC, a.quit},
		{InputView, gocui.KeyPgup, a.pageUp},
		{InputView, gocui.KeyPgdn, a.pageDown},
		{InputView, gocui.KeyCtrlV, a.paste},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding(b.view, b.key, gocui.ModNone, b.handler); err != nil {
			return fmt.Errorf("failed to bind key %v: %w", b.key, err)
		}
	}
	return nil
}

func (a *App) quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func (a *App) pageUp(g *gocui.Gui, v *gocui.View) error {
	a.output.pageUp()
	return nil
}

func (a *App) pageDown(g *gocui.Gui, v *gocui.View) error {
	a.output.pageDown()
	return nil
}

func (a *App) paste(g *gocui.Gui, v *gocui.View) error {
	text, err := a.clipboard.ReadAll()
	if err != nil {
		logging.LogError(a.logger, "clipboard read failed", err)
		return nil
	}
	Paste(a.session.Console(), text)
	return nil
}
