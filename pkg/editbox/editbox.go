package editbox

import (
	"slices"

	"github.com/kcaldas/dbgconsole/pkg/keys"
)

// EditBox is a single-line text editor: a rune buffer and a caret.
// The caret always lies in [0, Len()].
//
// All Handle* methods report whether the content or the caret changed.
type EditBox struct {
	text  []rune
	caret int
}

// New creates an edit box holding seed, with the caret at its end.
func New(seed string) *EditBox {
	text := []rune(seed)
	return &EditBox{text: text, caret: len(text)}
}

// Content returns the text of the edit box.
func (e *EditBox) Content() string { return string(e.text) }

// Caret returns the caret position, in runes.
func (e *EditBox) Caret() int { return e.caret }

// Len returns the content length, in runes.
func (e *EditBox) Len() int { return len(e.text) }

// Clone returns an independent copy of the edit box.
func (e *EditBox) Clone() *EditBox {
	return &EditBox{text: slices.Clone(e.text), caret: e.caret}
}

// HandleCharacter inserts r at the caret and advances the caret.
func (e *EditBox) HandleCharacter(r rune) bool {
	e.text = slices.Insert(e.text, e.caret, r)
	e.caret++
	return true
}

// HandleKey applies an editing or motion key. Keys the edit box does not know
// about leave it unchanged.
func (e *EditBox) HandleKey(key keys.Key, mods keys.Modifiers) bool {
	switch key {
	case keys.Left:
		return e.handleArrow(Left, mods)
	case keys.Right:
		return e.handleArrow(Right, mods)
	case keys.Backspace:
		return e.handleBackspace(mods)
	case keys.Home:
		return e.handleHome()
	case keys.End:
		return e.handleEnd()
	default:
		return false
	}
}

func (e *EditBox) handleArrow(dir Direction, mods keys.Modifiers) bool {
	mvt := e.simulateCaretMovement(dir, 1, mods.WordMotion())
	return e.setCaret(mvt.after)
}

func (e *EditBox) handleBackspace(mods keys.Modifiers) bool {
	mvt := e.simulateCaretMovement(Left, 1, mods.WordMotion())
	if mvt.null() {
		return false
	}

	begin, end := mvt.span()
	e.text = slices.Delete(e.text, begin, end)
	e.caret = begin
	return true
}

func (e *EditBox) handleHome() bool {
	if len(e.text) == 0 {
		return false
	}
	return e.setCaret(0)
}

func (e *EditBox) handleEnd() bool {
	return e.setCaret(len(e.text))
}

func (e *EditBox) setCaret(position int) bool {
	position = max(0, min(position, len(e.text)))
	if position == e.caret {
		return false
	}
	e.caret = position
	return true
}

// movement is a caret displacement computed before it is applied.
type movement struct {
	before int
	after  int
}

func (m movement) null() bool { return m.before == m.after }

func (m movement) span() (int, int) {
	return min(m.before, m.after), max(m.before, m.after)
}

// simulateCaretMovement computes where the caret would go. When word is set,
// amount is ignored.
func (e *EditBox) simulateCaretMovement(dir Direction, amount int, word bool) movement {
	switch {
	case dir == Left && word:
		return e.movementTo(e.previousWordStart())
	case dir == Left:
		return e.movementTo(e.caret - min(amount, e.caret))
	case word:
		return e.movementTo(e.nextWordStart())
	default:
		return e.movementTo(e.caret + min(amount, len(e.text)-e.caret))
	}
}

func (e *EditBox) movementTo(destination int) movement {
	return movement{before: e.caret, after: destination}
}

// previousWordStart is the Ctrl+Left destination. In order of preference:
// the start of the word the caret is inside of, the start of the nearest word
// on the left, the start of the nearest whitespace run on the left, then 0.
func (e *EditBox) previousWordStart() int {
	ranges := ComputeRanges(e.text)
	cur := e.currentRangeIndex(ranges)

	if cur < len(ranges) {
		r := ranges[cur]
		if r.Kind == Word && e.caret > r.Begin {
			return r.Begin
		}
	}

	if i, ok := FindPreviousRange(Word, cur, ranges); ok {
		return ranges[i].Begin
	}
	if i, ok := FindPreviousRange(Space, cur, ranges); ok {
		return ranges[i].Begin
	}
	return 0
}

// nextWordStart is the Ctrl+Right destination: the start of the next word on
// the right, or the end of the text.
func (e *EditBox) nextWordStart() int {
	ranges := ComputeRanges(e.text)
	cur := e.currentRangeIndex(ranges)

	if i, ok := FindNextRange(Word, cur, ranges); ok {
		return ranges[i].Begin
	}
	return len(e.text)
}

// currentRangeIndex returns the index of the range under the caret, or
// len(ranges) when the caret sits past the last character.
func (e *EditBox) currentRangeIndex(ranges []StringRange) int {
	if i, ok := FindRangeContaining(e.caret, ranges); ok {
		return i
	}
	return len(ranges)
}
