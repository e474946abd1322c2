package viewport

// Scroller slides a view of fixed length over a longer space. Lengths and the
// position are in lines; the position is the index of the first visible line.
//
//	space: |---------------------------------|
//	view:           |--------|
//	                ^ position
//
// The position never leaves [0, MaxPosition()].
type Scroller struct {
	space    int
	view     int
	position int
}

// NewScroller creates a scroller with the view placed at percent (0 to 1) of
// its range.
func NewScroller(space, view int, percent float64) *Scroller {
	s := &Scroller{space: max(space, 0), view: max(view, 0)}
	percent = min(max(percent, 0), 1)
	s.position = int(percent * float64(s.MaxPosition()))
	return s
}

// Space returns the space length.
func (s *Scroller) Space() int { return s.space }

// View returns the view length.
func (s *Scroller) View() int { return s.view }

// Position returns the first visible line.
func (s *Scroller) Position() int { return s.position }

// MaxPosition is the position that shows the end of the space.
func (s *Scroller) MaxPosition() int { return max(s.space-s.view, 0) }

// AtBottom reports whether the end of the space is visible.
func (s *Scroller) AtBottom() bool { return s.position >= s.MaxPosition() }

// PositionPercentage returns where the view sits in its range, from 0 to 1.
// It is 0 when the whole space fits in the view.
func (s *Scroller) PositionPercentage() float64 {
	maxPos := s.MaxPosition()
	if maxPos <= 0 {
		return 0
	}
	return float64(s.position) / float64(maxPos)
}

// ScrollUp moves the view towards the start by at most displacement lines.
// It returns the new position and whether it moved.
func (s *Scroller) ScrollUp(displacement int) (int, bool) {
	if displacement <= 0 {
		return s.position, false
	}
	return s.moveTo(s.position - displacement)
}

// ScrollDown moves the view towards the end by at most displacement lines.
func (s *Scroller) ScrollDown(displacement int) (int, bool) {
	if displacement <= 0 {
		return s.position, false
	}
	return s.moveTo(s.position + displacement)
}

// ScrollToBottom shows the end of the space.
func (s *Scroller) ScrollToBottom() (int, bool) {
	return s.moveTo(s.MaxPosition())
}

// SetSpaceLength changes the space length. Non-positive lengths are ignored.
// Shrinking the space pulls the view back in bounds.
func (s *Scroller) SetSpaceLength(length int) {
	if length <= 0 {
		return
	}
	s.space = length
	s.clamp()
}

// SetViewLength changes the view length, e.g. after a terminal resize.
func (s *Scroller) SetViewLength(length int) {
	s.view = max(length, 0)
	s.clamp()
}

func (s *Scroller) moveTo(position int) (int, bool) {
	previous := s.position
	s.position = position
	s.clamp()
	return s.position, s.position != previous
}

func (s *Scroller) clamp() {
	s.position = min(max(s.position, 0), s.MaxPosition())
}
