package commands

import (
	"strings"

	"github.com/kcaldas/dbgconsole/pkg/interpreter"
)

// CommandLister exposes the commands installed in an interpreter.
type CommandLister interface {
	Commands() []interpreter.Command
}

// ListCommandsCommand lists every installed command, one per line, as
// "name" or "name @alias".
type ListCommandsCommand struct {
	interpreter.BaseCommand
	lister CommandLister
}

func NewListCommandsCommand(lister CommandLister) *ListCommandsCommand {
	return &ListCommandsCommand{
		BaseCommand: interpreter.BaseCommand{
			Name:        "listcmds",
			Alias:       "lc",
			Description: "List the installed commands",
		},
		lister: lister,
	}
}

func (c *ListCommandsCommand) Execute(args []string) string {
	if c.lister == nil {
		return ""
	}

	var lines []string
	for _, cmd := range c.lister.Commands() {
		line := cmd.GetName()
		if alias := cmd.GetAlias(); alias != "" {
			line += " @" + alias
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
