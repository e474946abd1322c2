package editbox

// Direction is a horizontal direction along the text.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// SelectionRange is a selection anchored at one end, with the caret at the other.
// The stored bounds are always sorted; caretSide tells which bound is the caret.
type SelectionRange struct {
	begin     int
	end       int
	caretSide Direction
}

// NewSelectionRange creates a selection over [begin, end). The bounds are sorted
// if given in reverse order.
func NewSelectionRange(caretSide Direction, begin, end int) SelectionRange {
	if begin > end {
		begin, end = end, begin
	}
	return SelectionRange{begin: begin, end: end, caretSide: caretSide}
}

// Range returns the sorted bounds.
func (s SelectionRange) Range() (int, int) { return s.begin, s.end }

// CaretSide returns which bound acts as the caret.
func (s SelectionRange) CaretSide() Direction { return s.caretSide }

// Left returns the lower bound.
func (s SelectionRange) Left() int { return s.begin }

// Right returns the upper bound.
func (s SelectionRange) Right() int { return s.end }

// Len returns the number of selected positions.
func (s SelectionRange) Len() int { return s.end - s.begin }

// Empty reports whether the selection covers nothing.
func (s SelectionRange) Empty() bool { return s.begin >= s.end }

// Caret returns the caret end point.
func (s SelectionRange) Caret() int {
	if s.caretSide == Left {
		return s.begin
	}
	return s.end
}

// OtherEnd returns the anchor end point.
func (s SelectionRange) OtherEnd() int {
	if s.caretSide == Left {
		return s.end
	}
	return s.begin
}

// EndPoint returns the bound on the given side.
func (s SelectionRange) EndPoint(dir Direction) int {
	if dir == Left {
		return s.Left()
	}
	return s.Right()
}

// DragCaret moves the caret by at most amount positions in dir, staying inside
// [0, length]. Crossing the anchor flips the caret to the other side.
func (s *SelectionRange) DragCaret(dir Direction, amount, length int) {
	newCaret := movePoint(s.Caret(), dir, amount, length)
	anchor := s.OtherEnd()

	switch s.caretSide {
	case Left:
		if newCaret > anchor {
			*s = SelectionRange{begin: anchor, end: newCaret, caretSide: Right}
		} else {
			s.begin, s.end = newCaret, anchor
		}
	case Right:
		if newCaret < anchor {
			*s = SelectionRange{begin: newCaret, end: anchor, caretSide: Left}
		} else {
			s.begin, s.end = anchor, newCaret
		}
	}
}

// Collapse shrinks the selection to the bound on the dir side and puts the caret
// there. It reports whether the selection was non-empty before the call.
func (s *SelectionRange) Collapse(dir Direction) bool {
	wasNotEmpty := !s.Empty()

	pos := s.EndPoint(dir)
	s.begin, s.end = pos, pos
	s.caretSide = dir

	return wasNotEmpty
}

func movePoint(point int, dir Direction, amount, length int) int {
	if amount < 0 {
		amount = 0
	}
	if point < 0 {
		point = 0
	}
	if point > length {
		point = length
	}

	if dir == Left {
		return point - min(amount, point)
	}
	return point + min(amount, length-point)
}
