package editbox

import "unicode"

// RangeKind classifies a run of characters.
type RangeKind int

const (
	Word RangeKind = iota
	Space
)

func (k RangeKind) String() string {
	if k == Space {
		return "space"
	}
	return "word"
}

// StringRange is a maximal run of characters of the same kind.
type StringRange struct {
	Kind   RangeKind
	Begin  int
	Length int
}

// WordRange builds a Word range.
func WordRange(begin, length int) StringRange {
	return StringRange{Kind: Word, Begin: begin, Length: length}
}

// SpaceRange builds a Space range.
func SpaceRange(begin, length int) StringRange {
	return StringRange{Kind: Space, Begin: begin, Length: length}
}

// End returns the position right after the last character of the range.
func (r StringRange) End() int {
	return r.Begin + r.Length
}

// Contains reports whether x lies within [Begin, End).
func (r StringRange) Contains(x int) bool {
	return r.Begin <= x && x < r.End()
}

func classify(r rune) RangeKind {
	if unicode.IsSpace(r) {
		return Space
	}
	return Word
}

// ComputeRanges splits text into alternating maximal runs of word and space
// characters. The returned ranges tile [0, len(text)) exactly.
func ComputeRanges(text []rune) []StringRange {
	if len(text) == 0 {
		return nil
	}

	var ranges []StringRange
	start := 0
	kind := classify(text[0])

	for i := 1; i < len(text); i++ {
		k := classify(text[i])
		if k != kind {
			ranges = append(ranges, StringRange{Kind: kind, Begin: start, Length: i - start})
			start = i
			kind = k
		}
	}

	return append(ranges, StringRange{Kind: kind, Begin: start, Length: len(text) - start})
}

// ComputeStringRanges is ComputeRanges over a Go string.
func ComputeStringRanges(s string) []StringRange {
	return ComputeRanges([]rune(s))
}

// FindRangeContaining returns the index of the range containing index.
func FindRangeContaining(index int, ranges []StringRange) (int, bool) {
	for i, r := range ranges {
		if r.Contains(index) {
			return i, true
		}
	}
	return 0, false
}

// FindPreviousRange scans ranges strictly before start, nearest first, for one of
// the given kind. start may equal len(ranges) to search from past the end.
func FindPreviousRange(kind RangeKind, start int, ranges []StringRange) (int, bool) {
	if start > len(ranges) {
		start = len(ranges)
	}
	for i := start - 1; i >= 0; i-- {
		if ranges[i].Kind == kind {
			return i, true
		}
	}
	return 0, false
}

// FindNextRange scans ranges strictly after start, nearest first, for one of
// the given kind.
func FindNextRange(kind RangeKind, start int, ranges []StringRange) (int, bool) {
	if start < -1 {
		start = -1
	}
	for i := start + 1; i < len(ranges); i++ {
		if ranges[i].Kind == kind {
			return i, true
		}
	}
	return 0, false
}
