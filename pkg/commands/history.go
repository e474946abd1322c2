package commands

import (
	"fmt"
	"strings"

	"github.com/kcaldas/dbgconsole/pkg/interpreter"
)

// EntryLister exposes the entries of a command history, oldest first.
type EntryLister interface {
	Entries() []string
}

// HistoryCommand prints the numbered command history, oldest first.
type HistoryCommand struct {
	interpreter.BaseCommand
	history EntryLister
}

func NewHistoryCommand(history EntryLister) *HistoryCommand {
	return &HistoryCommand{
		BaseCommand: interpreter.BaseCommand{
			Name:        "history",
			Alias:       "hist",
			Description: "Show the command history",
		},
		history: history,
	}
}

func (c *HistoryCommand) Execute(args []string) string {
	if c.history == nil {
		return ""
	}

	entries := c.history.Entries()
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%3d  %s", i+1, entry))
	}

	return strings.Join(lines, "\n")
}
