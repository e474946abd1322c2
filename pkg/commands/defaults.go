package commands

import "github.com/kcaldas/dbgconsole/pkg/interpreter"

// RegisterDefaults installs the built-in commands into in. history may be nil,
// in which case the history command is left out.
func RegisterDefaults(in *interpreter.Interpreter, history EntryLister) {
	in.Register(
		NewEchoCommand(),
		NewListCommandsCommand(in),
		NewLoremIpsumCommand(),
	)
	if history != nil {
		in.Register(NewHistoryCommand(history))
	}
}
