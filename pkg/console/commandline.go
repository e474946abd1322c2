package console

import (
	"github.com/kcaldas/dbgconsole/pkg/editbox"
	"github.com/kcaldas/dbgconsole/pkg/history"
	"github.com/kcaldas/dbgconsole/pkg/keys"
)

// CommandLine is the input line of a console: a stack of drafts layered over
// a command history.
//
// Draft 0 is the line being typed. Each Up past the last draft recalls one
// more history entry into a new, independently editable draft. Editing a
// recalled draft never changes the history. Committing a line resets the
// stack to a single empty draft.
type CommandLine struct {
	history *history.History
	drafts  []*editbox.EditBox
	i       int
}

// NewCommandLine creates a command line whose history keeps at most
// historyCapacity lines.
func NewCommandLine(historyCapacity int) *CommandLine {
	return &CommandLine{
		history: history.New(historyCapacity),
		drafts:  []*editbox.EditBox{editbox.New("")},
	}
}

// History returns the underlying history.
func (c *CommandLine) History() *history.History { return c.history }

// Content returns the text of the current draft.
func (c *CommandLine) Content() string { return c.current().Content() }

// Caret returns the caret position in the current draft.
func (c *CommandLine) Caret() int { return c.current().Caret() }

// Depth returns the index of the current draft. 0 is the fresh line.
func (c *CommandLine) Depth() int { return c.i }

// Drafts returns the number of drafts on the stack.
func (c *CommandLine) Drafts() int { return len(c.drafts) }

func (c *CommandLine) current() *editbox.EditBox { return c.drafts[c.i] }

// HandleCharacter inserts r into the current draft.
func (c *CommandLine) HandleCharacter(r rune) bool {
	return c.current().HandleCharacter(r)
}

// HandleKey handles history recall and commit. Every other key goes to the
// current draft.
func (c *CommandLine) HandleKey(key keys.Key, mods keys.Modifiers) bool {
	switch key {
	case keys.Up:
		return c.up()
	case keys.Down:
		return c.down()
	case keys.Enter:
		_, ok := c.Commit()
		return ok
	default:
		return c.current().HandleKey(key, mods)
	}
}

func (c *CommandLine) up() bool {
	if c.i+1 < len(c.drafts) {
		c.i++
		return true
	}

	if c.history.GoToPrevious() != history.AtNewEntry {
		return false
	}

	c.drafts = append(c.drafts, editbox.New(c.history.Get()))
	c.i++
	return true
}

func (c *CommandLine) down() bool {
	if c.i == 0 {
		return false
	}
	c.i--
	return true
}

// Commit takes the current draft as a committed line. An empty line is not
// committed and leaves everything unchanged. Otherwise the line is pushed to
// the history unless it repeats the most recent entry, and the drafts are
// reset.
func (c *CommandLine) Commit() (string, bool) {
	line := c.Content()
	if line == "" {
		return "", false
	}

	if c.history.Top() != line {
		c.history.Push(line)
	}
	c.Reset()

	return line, true
}

// Reset drops every draft and ends the history recall.
func (c *CommandLine) Reset() {
	c.history.ResetIteration()
	c.drafts = []*editbox.EditBox{editbox.New("")}
	c.i = 0
}
