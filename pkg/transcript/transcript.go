package transcript

import (
	"strings"
	"sync"

	"github.com/kcaldas/dbgconsole/pkg/events"
)

// Kind tells what an item holds.
type Kind int

const (
	CommandLine Kind = iota
	Output
)

func (k Kind) String() string {
	if k == Output {
		return "output"
	}
	return "command_line"
}

// Item is one displayable block of the transcript.
type Item struct {
	Kind Kind
	Text string
}

// Transcript is the scrollback shown by a front end: every executed command
// line followed by its output, oldest first.
//
// It keeps at most twice the console's output capacity items, so it holds as
// many commands as the output ring holds outputs.
type Transcript struct {
	mu       sync.RWMutex
	items    []Item
	maxItems int
	version  int
}

// New creates a transcript sized for a console storing outputCapacity outputs.
func New(outputCapacity int) *Transcript {
	if outputCapacity < 1 {
		outputCapacity = 1
	}
	return &Transcript{maxItems: 2 * outputCapacity}
}

// Attach subscribes the transcript to executed commands on sub. The returned
// function detaches it.
func (t *Transcript) Attach(sub events.Subscriber) func() {
	return sub.Subscribe(events.TopicCommandExecuted, func(event interface{}) {
		if e, ok := event.(events.CommandExecutedEvent); ok {
			t.Append(e.CommandLine, e.Output)
		}
	})
}

// Append adds a command line and its output, evicting the oldest items beyond
// the limit.
func (t *Transcript) Append(commandLine, output string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items,
		Item{Kind: CommandLine, Text: commandLine},
		Item{Kind: Output, Text: output},
	)
	if over := len(t.items) - t.maxItems; over > 0 {
		t.items = append(t.items[:0:0], t.items[over:]...)
	}
	t.version++
}

// Items returns a copy of the items, oldest first.
func (t *Transcript) Items() []Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Item(nil), t.items...)
}

// Len returns the number of items.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Version increases on every change. Front ends compare it to skip redraws.
func (t *Transcript) Version() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Lines renders the transcript as display lines. Command lines are prefixed
// with prompt; outputs are split on newlines.
func (t *Transcript) Lines(prompt string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var lines []string
	for _, item := range t.items {
		switch item.Kind {
		case CommandLine:
			lines = append(lines, prompt+item.Text)
		case Output:
			lines = append(lines, strings.Split(item.Text, "\n")...)
		}
	}
	return lines
}

// Clear removes every item.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = nil
	t.version++
}
