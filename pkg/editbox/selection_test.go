package editbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionRange_DragCaret(t *testing.T) {
	tests := []struct {
		name     string
		initial  SelectionRange
		dir      Direction
		amount   int
		length   int
		expected SelectionRange
	}{
		{
			name:     "drag left is clamped at zero",
			initial:  NewSelectionRange(Left, 2, 5),
			dir:      Left,
			amount:   3,
			length:   10,
			expected: NewSelectionRange(Left, 0, 5),
		},
		{
			name:     "drag past the anchor flips the caret side",
			initial:  NewSelectionRange(Left, 2, 5),
			dir:      Right,
			amount:   5,
			length:   10,
			expected: NewSelectionRange(Right, 5, 7),
		},
		{
			name:     "drag right without reaching the anchor",
			initial:  NewSelectionRange(Left, 2, 5),
			dir:      Right,
			amount:   2,
			length:   10,
			expected: NewSelectionRange(Left, 4, 5),
		},
		{
			name:     "drag exactly onto the anchor keeps the side",
			initial:  NewSelectionRange(Left, 2, 5),
			dir:      Right,
			amount:   3,
			length:   10,
			expected: NewSelectionRange(Left, 5, 5),
		},
		{
			name:     "drag right is clamped at the length",
			initial:  NewSelectionRange(Right, 5, 9),
			dir:      Right,
			amount:   4,
			length:   10,
			expected: NewSelectionRange(Right, 5, 10),
		},
		{
			name:     "right caret dragged past the anchor flips left",
			initial:  NewSelectionRange(Right, 5, 7),
			dir:      Left,
			amount:   4,
			length:   10,
			expected: NewSelectionRange(Left, 3, 5),
		},
		{
			name:     "zero amount is a no-op",
			initial:  NewSelectionRange(Right, 1, 4),
			dir:      Left,
			amount:   0,
			length:   10,
			expected: NewSelectionRange(Right, 1, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.initial
			sel.DragCaret(tt.dir, tt.amount, tt.length)
			assert.Equal(t, tt.expected, sel)
			assert.LessOrEqual(t, sel.Left(), sel.Right())
		})
	}
}

func TestSelectionRange_Collapse(t *testing.T) {
	t.Run("collapse left", func(t *testing.T) {
		sel := NewSelectionRange(Right, 2, 6)
		assert.True(t, sel.Collapse(Left))
		assert.Equal(t, NewSelectionRange(Left, 2, 2), sel)
		assert.True(t, sel.Empty())
	})

	t.Run("collapse right", func(t *testing.T) {
		sel := NewSelectionRange(Left, 2, 6)
		assert.True(t, sel.Collapse(Right))
		assert.Equal(t, 6, sel.Caret())
		assert.Equal(t, 6, sel.OtherEnd())
	})

	t.Run("collapsing an empty range reports false", func(t *testing.T) {
		sel := NewSelectionRange(Left, 3, 3)
		assert.False(t, sel.Collapse(Right))
	})
}

func TestSelectionRange_EndPoints(t *testing.T) {
	sel := NewSelectionRange(Left, 7, 3)

	assert.Equal(t, 3, sel.Left())
	assert.Equal(t, 7, sel.Right())
	assert.Equal(t, 3, sel.Caret())
	assert.Equal(t, 7, sel.OtherEnd())
	assert.Equal(t, 4, sel.Len())

	sel = NewSelectionRange(Right, 3, 7)
	assert.Equal(t, 7, sel.Caret())
	assert.Equal(t, 3, sel.OtherEnd())
}
