package events

// CommandExecutedEvent is published by a console each time a committed command
// line has been run through the interpreter.
type CommandExecutedEvent struct {
	SessionID   string
	CommandLine string
	Output      string
	// AddedToHistory is false when the line repeated the most recent entry.
	AddedToHistory bool
}

// Topic returns the event topic for executed commands
func (e CommandExecutedEvent) Topic() string {
	return TopicCommandExecuted
}

// HistoryRecalledEvent is published when Up pulls a new entry out of the
// history into the draft stack.
type HistoryRecalledEvent struct {
	SessionID string
	Line      string
	Depth     int
}

// Topic returns the event topic for history recalls
func (e HistoryRecalledEvent) Topic() string {
	return TopicHistoryRecalled
}

const (
	TopicCommandExecuted = "console.command.executed"
	TopicHistoryRecalled = "console.history.recalled"
)
