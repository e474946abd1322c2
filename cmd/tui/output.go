package tui

import "github.com/kcaldas/dbgconsole/pkg/viewport"

// outputPane tracks which transcript lines the output view shows. It follows
// new output while the end of the transcript is visible.
type outputPane struct {
	scroller    *viewport.Scroller
	follow      bool
	seenVersion int
}

func newOutputPane() *outputPane {
	return &outputPane{
		scroller: viewport.NewScroller(0, 0, 1),
		follow:   true,
	}
}

// sync updates the pane for a transcript of lineCount lines at version and
// returns the first line to show.
func (p *outputPane) sync(lineCount, version, viewHeight int) int {
	p.scroller.SetViewLength(viewHeight)
	p.scroller.SetSpaceLength(lineCount)

	if version != p.seenVersion {
		p.seenVersion = version
		if p.follow {
			p.scroller.ScrollToBottom()
		}
	}
	return p.scroller.Position()
}

func (p *outputPane) page() int {
	return max(p.scroller.View()-1, 1)
}

func (p *outputPane) pageUp() bool {
	_, moved := p.scroller.ScrollUp(p.page())
	p.follow = p.scroller.AtBottom()
	return moved
}

func (p *outputPane) pageDown() bool {
	_, moved := p.scroller.ScrollDown(p.page())
	p.follow = p.scroller.AtBottom()
	return moved
}
