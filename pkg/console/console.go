package console

import (
	"github.com/google/uuid"
	"github.com/kcaldas/dbgconsole/pkg/events"
	"github.com/kcaldas/dbgconsole/pkg/history"
	"github.com/kcaldas/dbgconsole/pkg/interpreter"
	"github.com/kcaldas/dbgconsole/pkg/keys"
	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/kcaldas/dbgconsole/pkg/ring"
)

// Options configures a Console.
type Options struct {
	HistoryCapacity int
	OutputCapacity  int
	Interpreter     *interpreter.Interpreter
	// Publisher receives console events. Nil disables publishing.
	Publisher events.Publisher
}

// Console runs committed command lines through an interpreter and keeps the
// most recent outputs in a bounded ring.
type Console struct {
	line            *CommandLine
	interpreter     *interpreter.Interpreter
	outputs         *ring.Buffer[string]
	lastCommandLine string

	sessionID string
	publisher events.Publisher
	logger    logging.Logger
}

// New creates a console. Both capacities must be at least 1. A nil
// interpreter is replaced by an empty one.
func New(opts Options) *Console {
	in := opts.Interpreter
	if in == nil {
		in = interpreter.New()
	}

	sessionID := uuid.NewString()
	c := &Console{
		line:        NewCommandLine(opts.HistoryCapacity),
		interpreter: in,
		outputs:     ring.New[string](opts.OutputCapacity),
		sessionID:   sessionID,
		publisher:   opts.Publisher,
		logger:      logging.NewSessionLogger("console", sessionID),
	}

	c.logger.Debug("console created",
		"history_capacity", opts.HistoryCapacity,
		"output_capacity", opts.OutputCapacity)

	return c
}

// SessionID identifies this console in logs and events.
func (c *Console) SessionID() string { return c.sessionID }

// Interpreter returns the interpreter commands are dispatched to.
func (c *Console) Interpreter() *interpreter.Interpreter { return c.interpreter }

// History returns the command history.
func (c *Console) History() *history.History { return c.line.History() }

// CurrentLine returns the text of the line being edited.
func (c *Console) CurrentLine() string { return c.line.Content() }

// CaretPosition returns the caret position in the line being edited.
func (c *Console) CaretPosition() int { return c.line.Caret() }

// HistoryDepth returns the index of the draft being edited. 0 is the fresh line.
func (c *Console) HistoryDepth() int { return c.line.Depth() }

// LastCommandLine returns the most recently executed line, or "".
func (c *Console) LastCommandLine() string { return c.lastCommandLine }

// OutputSize returns the number of stored outputs.
func (c *Console) OutputSize() int { return c.outputs.Size() }

// OutputCapacity returns the maximum number of stored outputs.
func (c *Console) OutputCapacity() int { return c.outputs.Capacity() }

// MostRecentOutput returns the i-th most recent output. 0 is the newest.
func (c *Console) MostRecentOutput(i int) (string, bool) {
	if i < 0 || i >= c.outputs.Size() {
		return "", false
	}
	return c.outputs.Newest(i), true
}

// HandleCharacter inserts r into the line being edited.
func (c *Console) HandleCharacter(r rune) bool {
	return c.line.HandleCharacter(r)
}

// HandleKey applies key to the console and reports whether the line, the caret
// or the outputs changed. PageUp and PageDown belong to the view and are
// ignored.
func (c *Console) HandleKey(key keys.Key, mods keys.Modifiers) bool {
	switch key {
	case keys.Enter:
		_, ok := c.Submit()
		return ok
	case keys.Up:
		return c.recall()
	case keys.PageUp, keys.PageDown:
		return false
	default:
		return c.line.HandleKey(key, mods)
	}
}

func (c *Console) recall() bool {
	drafts := c.line.Drafts()
	if !c.line.HandleKey(keys.Up, keys.None) {
		return false
	}

	if c.line.Drafts() > drafts {
		c.logger.Debug("history entry recalled", "depth", c.line.Depth())
		c.publish(events.TopicHistoryRecalled, events.HistoryRecalledEvent{
			SessionID: c.sessionID,
			Line:      c.line.Content(),
			Depth:     c.line.Depth(),
		})
	}
	return true
}

// Submit commits the line being edited: it runs it, stores the output, then
// records the line in the history. An empty line is ignored.
func (c *Console) Submit() (string, bool) {
	line := c.line.Content()
	if line == "" {
		return "", false
	}

	c.lastCommandLine = line
	output := c.interpreter.Execute(line)
	c.outputs.PushBack(output)

	added := c.line.History().Top() != line
	c.line.Commit()

	c.logger.Debug("command executed",
		"line", line,
		"added_to_history", added,
		"outputs", c.outputs.Size())

	c.publish(events.TopicCommandExecuted, events.CommandExecutedEvent{
		SessionID:      c.sessionID,
		CommandLine:    line,
		Output:         output,
		AddedToHistory: added,
	})

	return output, true
}

// Run types line into a fresh draft and submits it. Whatever was being edited
// is discarded.
func (c *Console) Run(line string) (string, bool) {
	c.line.Reset()
	for _, r := range line {
		c.line.HandleCharacter(r)
	}
	return c.Submit()
}

func (c *Console) publish(topic string, event interface{}) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(topic, event)
}
