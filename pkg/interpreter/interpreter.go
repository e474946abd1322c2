package interpreter

import (
	"strings"
	"unicode"
)

// UnknownCommand is the output of Execute when no command matches.
const UnknownCommand = "Unknown command"

// Interpreter dispatches input lines to registered commands. Commands are
// registered before first use and never change afterwards.
type Interpreter struct {
	commands []Command
}

// New creates an interpreter with the given commands, in priority order.
func New(cmds ...Command) *Interpreter {
	return &Interpreter{commands: append([]Command(nil), cmds...)}
}

// Register appends commands after the ones already registered.
func (in *Interpreter) Register(cmds ...Command) {
	in.commands = append(in.commands, cmds...)
}

// Commands returns the registered commands in registration order.
func (in *Interpreter) Commands() []Command {
	return append([]Command(nil), in.commands...)
}

// Execute runs the first command whose alias or name occurs in input. The text
// following the matched token is split on whitespace into the arguments.
func (in *Interpreter) Execute(input string) string {
	input = strings.TrimSpace(input)

	for _, cmd := range in.commands {
		for _, name := range []string{cmd.GetAlias(), cmd.GetName()} {
			if output, ok := tryCommand(cmd, name, input); ok {
				return output
			}
		}
	}

	return UnknownCommand
}

func tryCommand(cmd Command, name, input string) (string, bool) {
	if name == "" {
		return "", false
	}

	i := strings.Index(input, name)
	if i < 0 {
		return "", false
	}

	rest := strings.TrimLeftFunc(input[i+len(name):], unicode.IsSpace)
	return cmd.Execute(strings.Fields(rest)), true
}
