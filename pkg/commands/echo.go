package commands

import (
	"strings"

	"github.com/kcaldas/dbgconsole/pkg/interpreter"
)

// EchoCommand returns its arguments joined by single spaces.
//
//	> echo hello a b cd     32
//	hello a b cd 32
type EchoCommand struct {
	interpreter.BaseCommand
}

func NewEchoCommand() *EchoCommand {
	return &EchoCommand{
		BaseCommand: interpreter.BaseCommand{
			Name:        "echo",
			Description: "Print the arguments",
		},
	}
}

func (c *EchoCommand) Execute(args []string) string {
	return strings.Join(args, " ")
}
