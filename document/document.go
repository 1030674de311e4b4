package document

import (
	"strings"
)

// Line is a single line of a document, without its line terminator.
type Line struct {
	Number             int
	Text               string
	FirstNonWhitespace int // index of first non-blank character, len(Text) if blank
}

// IsBlank is true for lines consisting of whitespace only.
func (l Line) IsBlank() bool {
	return l.FirstNonWhitespace == len(l.Text)
}

// Indentation is the leading whitespace of the line.
func (l Line) Indentation() string {
	return l.Text[:l.FirstNonWhitespace]
}

// Document is a read-only, line-indexed view of an editor document.
type Document interface {
	LineAt(n int) Line // out-of-range lines are empty
	LineCount() int    // always at least 1
	Text() string      // the complete text
	LanguageID() string
}

// TextEdit replaces the text of a range. An empty range inserts.
type TextEdit struct {
	Range   Range
	NewText string
}

// ApplyOptions controls how an edit batch is recorded on the undo stack.
// Without undo stops, a batch is merged into the preceding undo group.
type ApplyOptions struct {
	UndoStopBefore bool
	UndoStopAfter  bool
}

// --- Snapshot --------------------------------------------------------------

// Snapshot is an immutable Document.
type Snapshot struct {
	text     string
	starts   []int // byte offset of the start of each line
	language string
}

var _ Document = &Snapshot{}

// NewSnapshot creates a document snapshot for text. Lines are separated by
// '\n'; a preceding '\r' is not part of the line text.
func NewSnapshot(text string, languageID string) *Snapshot {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{text: text, starts: starts, language: languageID}
}

func (s *Snapshot) LineCount() int {
	return len(s.starts)
}

func (s *Snapshot) Text() string {
	return s.text
}

func (s *Snapshot) LanguageID() string {
	return s.language
}

func (s *Snapshot) LineAt(n int) Line {
	if n < 0 || n >= len(s.starts) {
		return Line{Number: n}
	}
	text := s.text[s.starts[n]:s.lineEnd(n)]
	first := len(text) - len(strings.TrimLeft(text, " \t"))
	return Line{Number: n, Text: text, FirstNonWhitespace: first}
}

// lineEnd is the offset just past the last character of line n, excluding
// the line terminator.
func (s *Snapshot) lineEnd(n int) int {
	end := len(s.text)
	if n+1 < len(s.starts) {
		end = s.starts[n+1] - 1
		if end > s.starts[n] && s.text[end-1] == '\r' {
			end--
		}
	}
	return end
}

// Valid is true if p addresses an existing line and a character offset
// not beyond the end of that line.
func (s *Snapshot) Valid(p Position) bool {
	if p.Line < 0 || p.Line >= len(s.starts) || p.Character < 0 {
		return false
	}
	return s.starts[p.Line]+p.Character <= s.lineEnd(p.Line)
}

// Offset converts a position into a byte offset into Text(). Positions
// outside the document are clamped.
func (s *Snapshot) Offset(p Position) int {
	switch {
	case p.Line < 0:
		return 0
	case p.Line >= len(s.starts):
		return len(s.text)
	}
	off := s.starts[p.Line] + max(0, p.Character)
	return min(off, s.lineEnd(p.Line))
}

// PositionAt converts a byte offset into a position.
func (s *Snapshot) PositionAt(offset int) Position {
	offset = max(0, min(offset, len(s.text)))
	line := 0
	for line+1 < len(s.starts) && s.starts[line+1] <= offset {
		line++
	}
	return Position{Line: line, Character: offset - s.starts[line]}
}

// Clamp moves p onto the nearest valid position of s.
func (s *Snapshot) Clamp(p Position) Position {
	return s.PositionAt(s.Offset(p))
}

// --- Helpers ---------------------------------------------------------------

// LastLine returns the position just past the last character of doc.
func LastLine(doc Document) Position {
	n := doc.LineCount() - 1
	return Position{Line: n, Character: len(doc.LineAt(n).Text)}
}

// TextIn returns the text of doc covered by r. Lines are joined by '\n'.
func TextIn(doc Document, r Range) string {
	r = NewRange(r.Start, r.End)
	if r.Start.Line == r.End.Line {
		return cut(doc.LineAt(r.Start.Line).Text, r.Start.Character, r.End.Character)
	}
	var b strings.Builder
	for l := r.Start.Line; l <= r.End.Line && l < doc.LineCount(); l++ {
		text := doc.LineAt(l).Text
		switch l {
		case r.Start.Line:
			text = cut(text, r.Start.Character, len(text))
		case r.End.Line:
			text = cut(text, 0, r.End.Character)
		}
		if l > r.Start.Line {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}
	return b.String()
}

// cut is s[from:to] with both bounds clamped to s.
func cut(s string, from, to int) string {
	from = max(0, min(from, len(s)))
	to = max(from, min(to, len(s)))
	return s[from:to]
}

// OffsetOf converts a position of doc into a character offset, counting
// each line break as one. Unlike Snapshot.Offset it works for any Document;
// use it together with PositionOf only.
func OffsetOf(doc Document, p Position) int {
	off := 0
	for l := 0; l < p.Line && l < doc.LineCount(); l++ {
		off += len(doc.LineAt(l).Text) + 1
	}
	return off + max(0, min(p.Character, len(doc.LineAt(p.Line).Text)))
}

// PositionOf is the inverse of OffsetOf.
func PositionOf(doc Document, offset int) Position {
	offset = max(0, offset)
	for l := 0; l < doc.LineCount(); l++ {
		n := len(doc.LineAt(l).Text)
		if offset <= n || l == doc.LineCount()-1 {
			return Position{Line: l, Character: min(offset, n)}
		}
		offset -= n + 1
	}
	return Position{}
}
