package di

import (
	"fmt"

	"github.com/kcaldas/dbgconsole/pkg/commands"
	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/console"
	"github.com/kcaldas/dbgconsole/pkg/events"
	"github.com/kcaldas/dbgconsole/pkg/interpreter"
	"github.com/kcaldas/dbgconsole/pkg/transcript"
)

// Wire providers for a console session. Every session gets its own bus.

func ProvideEventBus() *events.SyncBus {
	return events.NewEventBus()
}

func ProvideInterpreter() *interpreter.Interpreter {
	return interpreter.New()
}

// ProvideConsole builds the console and registers the built-in commands,
// including the history command reading this console's history.
func ProvideConsole(cfg config.Config, in *interpreter.Interpreter, publisher events.Publisher) (*console.Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create console: %w", err)
	}

	cons := console.New(console.Options{
		HistoryCapacity: cfg.HistoryCapacity,
		OutputCapacity:  cfg.OutputCapacity,
		Interpreter:     in,
		Publisher:       publisher,
	})
	commands.RegisterDefaults(in, cons.History())

	return cons, nil
}

func ProvideTranscript(cfg config.Config) *transcript.Transcript {
	return transcript.New(cfg.OutputCapacity)
}
