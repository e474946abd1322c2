package history

import "github.com/kcaldas/dbgconsole/pkg/ring"

// IterEvent is the outcome of a history iteration step.
type IterEvent int

const (
	// AtNewEntry: the cursor moved onto an entry.
	AtNewEntry IterEvent = iota
	// AlreadyAtOldest: the cursor was on the oldest entry and stayed there.
	AlreadyAtOldest
	// AlreadyOutside: the cursor was undefined and stayed undefined.
	AlreadyOutside
	// LeavingHistory: the cursor was on the most recent entry and became undefined.
	LeavingHistory
	// CannotIterate: the history is empty.
	CannotIterate
)

var iterEventNames = map[IterEvent]string{
	AtNewEntry:      "at_new_entry",
	AlreadyAtOldest: "already_at_oldest",
	AlreadyOutside:  "already_outside",
	LeavingHistory:  "leaving_history",
	CannotIterate:   "cannot_iterate",
}

func (e IterEvent) String() string {
	return iterEventNames[e]
}

// History is a bounded log of committed command lines. Once full, pushing a
// new line evicts the oldest one.
//
// A cursor walks the entries from the most recent towards the oldest and back.
// The cursor is either undefined (not iterating) or points at one entry; any
// push makes it undefined again.
type History struct {
	entries   *ring.Buffer[string]
	iterating bool
	cursor    int // 0 is the oldest entry, Size()-1 the most recent
}

// New creates a history holding at most capacity lines. capacity must be at least 1.
func New(capacity int) *History {
	return &History{entries: ring.New[string](capacity)}
}

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int { return h.entries.Capacity() }

// Size returns the current number of entries.
func (h *History) Size() int { return h.entries.Size() }

func (h *History) Full() bool  { return h.entries.Full() }
func (h *History) Empty() bool { return h.entries.Empty() }

// Iterating reports whether the cursor is defined.
func (h *History) Iterating() bool { return h.iterating }

// Push appends line as the most recent entry and resets the iteration.
func (h *History) Push(line string) {
	h.entries.PushBack(line)
	h.ResetIteration()
}

// Get returns the entry under the cursor, or "" when not iterating.
func (h *History) Get() string {
	if !h.iterating {
		return ""
	}
	return h.entries.Peek(h.cursor)
}

// Top returns the most recent entry, or "" when empty. The cursor is untouched.
func (h *History) Top() string {
	if h.Empty() {
		return ""
	}
	return h.entries.Newest(0)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return h.entries.Items()
}

// GoToPrevious moves the cursor one entry towards the oldest. When not
// iterating, it starts the iteration on the most recent entry.
func (h *History) GoToPrevious() IterEvent {
	if h.Empty() {
		return CannotIterate
	}

	if !h.iterating {
		h.iterating = true
		h.cursor = h.Size() - 1
		return AtNewEntry
	}

	if h.cursor == 0 {
		return AlreadyAtOldest
	}

	h.cursor--
	return AtNewEntry
}

// GoToNext moves the cursor one entry towards the most recent. Moving past the
// most recent entry ends the iteration.
func (h *History) GoToNext() IterEvent {
	if h.Empty() {
		return CannotIterate
	}

	if !h.iterating {
		return AlreadyOutside
	}

	if h.cursor == h.Size()-1 {
		h.ResetIteration()
		return LeavingHistory
	}

	h.cursor++
	return AtNewEntry
}

// ResetIteration makes the cursor undefined. A following GoToPrevious lands on
// the most recent entry.
func (h *History) ResetIteration() {
	h.iterating = false
	h.cursor = 0
}

// CancelIteration is ResetIteration under the name the key handlers use.
func (h *History) CancelIteration() {
	h.ResetIteration()
}
