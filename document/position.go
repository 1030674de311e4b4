package document

import "fmt"

// Position is a zero-based (line, character) pair. Positions are ordered
// lexicographically.
type Position struct {
	Line      int
	Character int
}

// Pos is short for Position{line, char}.
func Pos(line, char int) Position {
	return Position{Line: line, Character: char}
}

// Compare returns -1, 0 or +1 if p is before, equal to or after other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Character < other.Character:
		return -1
	case p.Character > other.Character:
		return 1
	}
	return 0
}

// Before is true if p is strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// Translate shifts p by the given line and character deltas.
func (p Position) Translate(lines, chars int) Position {
	return Position{Line: p.Line + lines, Character: p.Character + chars}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range is a span between two positions, possibly over several lines.
// Start is never after End.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two positions in any order.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Empty creates an empty range at p.
func Empty(p Position) Range {
	return Range{Start: p, End: p}
}

// IsEmpty is true for zero-width ranges.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains is true if p is within r, boundaries included.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && !r.End.Before(p)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s–%s]", r.Start, r.End)
}

// Selection is an editor selection. Anchor is where the selection started,
// Active is where the caret is. For an empty selection both are equal.
type Selection struct {
	Anchor Position
	Active Position
}

// Caret creates an empty selection at p.
func Caret(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// Start is the smaller of anchor and active.
func (s Selection) Start() Position {
	if s.Active.Before(s.Anchor) {
		return s.Active
	}
	return s.Anchor
}

// End is the larger of anchor and active.
func (s Selection) End() Position {
	if s.Active.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Active
}

// IsEmpty is true if the selection is a plain caret.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Range returns the selected range.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

func (s Selection) String() string {
	if s.IsEmpty() {
		return "caret@" + s.Active.String()
	}
	return "sel" + s.Range().String()
}
