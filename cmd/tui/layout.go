package tui

import (
	"unicode/utf8"

	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/mattn/go-runewidth"
)

// View names
const (
	OutputView = "output"
	InputView  = "input"
)

// inputHeight includes the frame.
const inputHeight = 3

// buildLayoutTree stacks the output view over a fixed-height input view.
func buildLayoutTree() *boxlayout.Box {
	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: OutputView, Weight: 1},
			{Window: InputView, Size: inputHeight},
		},
	}
}

// arrangeViews computes the view rectangles for a terminal of the given size.
func arrangeViews(width, height int) map[string]boxlayout.Dimensions {
	return boxlayout.ArrangeWindows(buildLayoutTree(), 0, 0, width, height)
}

// innerHeight is the number of text lines a framed view of dims shows. The
// bounds of dims are inclusive and hold the frame.
func innerHeight(dims boxlayout.Dimensions) int {
	return max(dims.Y1-dims.Y0-1, 0)
}

// caretColumn converts a rune caret in line into a screen column after prompt.
func caretColumn(prompt, line string, caret int) int {
	caret = max(0, min(caret, utf8.RuneCountInString(line)))
	return runewidth.StringWidth(prompt) + runewidth.StringWidth(string([]rune(line)[:caret]))
}
