package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScroller(t *testing.T) {
	tests := []struct {
		name    string
		space   int
		view    int
		percent float64
		want    int
	}{
		{"top", 100, 10, 0, 0},
		{"bottom", 100, 10, 1, 90},
		{"middle", 100, 10, 0.5, 45},
		{"percent clamped", 100, 10, 3, 90},
		{"space fits in view", 5, 10, 1, 0},
		{"negative lengths", -4, -2, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewScroller(tt.space, tt.view, tt.percent).Position())
		})
	}
}

func TestScroller_Scroll(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		up        bool
		amount    int
		wantPos   int
		wantMoved bool
	}{
		{"down within range", 0, false, 5, 5, true},
		{"down clamped to max", 85, false, 10, 90, true},
		{"down at bottom", 90, false, 1, 90, false},
		{"up within range", 50, true, 5, 45, true},
		{"up clamped to zero", 3, true, 10, 0, true},
		{"up at top", 0, true, 1, 0, false},
		{"zero displacement", 50, true, 0, 50, false},
		{"negative displacement", 50, false, -5, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(100, 10, 0)
			s.position = tt.start

			var pos int
			var moved bool
			if tt.up {
				pos, moved = s.ScrollUp(tt.amount)
			} else {
				pos, moved = s.ScrollDown(tt.amount)
			}

			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantPos, s.Position())
		})
	}
}

func TestScroller_SpaceFitsInView(t *testing.T) {
	s := NewScroller(3, 10, 0)

	_, moved := s.ScrollDown(5)
	assert.False(t, moved)
	assert.Equal(t, 0.0, s.PositionPercentage())
	assert.True(t, s.AtBottom())
}

func TestScroller_SetSpaceLength(t *testing.T) {
	s := NewScroller(100, 10, 1)
	assert.Equal(t, 90, s.Position())

	s.SetSpaceLength(0)
	s.SetSpaceLength(-3)
	assert.Equal(t, 100, s.Space())

	s.SetSpaceLength(50)
	assert.Equal(t, 40, s.Position())

	s.SetSpaceLength(200)
	assert.Equal(t, 40, s.Position())
	assert.False(t, s.AtBottom())
}

func TestScroller_SetViewLength(t *testing.T) {
	s := NewScroller(100, 10, 1)
	s.SetViewLength(30)
	assert.Equal(t, 70, s.Position())
	assert.Equal(t, 30, s.View())
}

func TestScroller_PositionPercentage(t *testing.T) {
	s := NewScroller(110, 10, 0)
	s.ScrollDown(25)
	assert.InDelta(t, 0.25, s.PositionPercentage(), 1e-9)

	_, moved := s.ScrollToBottom()
	assert.True(t, moved)
	assert.Equal(t, 1.0, s.PositionPercentage())
}
