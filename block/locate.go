package block

import (
	"strings"

	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/maybe"
)

// Block is the interior of a `{ … }` declaration block: the text between
// the opening and the closing brace. If a brace is missing on one side,
// the interior extends to the nearest foreign brace or to the document's
// edge. Blocks are values; they are recomputed for every caret move.
type Block struct {
	Text       string
	Start      document.Position // just after the opening brace
	End        document.Position // at the closing brace
	SingleLine bool              // both braces are on the caret's line
	Indent     string            // leading whitespace of the interior line nearest to the caret
}

// Range is the span of the block's interior.
func (b Block) Range() document.Range {
	return document.Range{Start: b.Start, End: b.End}
}

// Locate finds the innermost declaration block around caret. It returns
// Nothing if the caret is outside of any block, e.g., at top level between
// two rules.
func Locate(caret document.Position, doc document.Document) maybe.Maybe[Block] {
	if caret.Line < 0 || caret.Line >= doc.LineCount() {
		return maybe.Nothing[Block]()
	}
	line := doc.LineAt(caret.Line)
	caret.Character = max(0, min(caret.Character, len(line.Text)))
	if e := InBetween(line.Text, caret.Character, "{", "}"); e.Inside() {
		text := line.Text[e.Open+1 : e.Close]
		b := Block{
			Text:       text,
			Start:      document.Pos(caret.Line, e.Open+1),
			End:        document.Pos(caret.Line, e.Close),
			SingleLine: true,
			Indent:     text[:len(text)-len(strings.TrimLeft(text, " \t"))],
		}
		tracer().Debugf("single-line block %s", b.Range())
		return maybe.Just(b)
	}
	up := scanOutward(doc, caret, upward)
	down := scanOutward(doc, caret, downward)
	if !up.encloses() && !down.encloses() {
		tracer().Debugf("caret %s is not inside a block", caret)
		return maybe.Nothing[Block]()
	}
	b := Block{Start: up.pos, End: down.pos}
	b.Text = document.TextIn(doc, b.Range())
	b.Indent = indentation(doc, caret.Line, up)
	tracer().Debugf("block %s, open=%v, close=%v", b.Range(), up.encloses(), down.encloses())
	return maybe.Just(b)
}

// indentation returns the leading whitespace of the first line, going
// upward from the caret line, which lies completely inside the block and
// is indented.
func indentation(doc document.Document, from int, up boundary) string {
	for l := from; l >= up.pos.Line; l-- {
		if l == up.pos.Line && up.kind != edge {
			break
		}
		if line := doc.LineAt(l); line.FirstNonWhitespace > 0 {
			return line.Indentation()
		}
	}
	return ""
}

// --- Scanning --------------------------------------------------------------

type boundaryKind uint8

const (
	enclosing boundaryKind = iota // a brace belonging to the block
	foreign                       // a brace belonging to a neighbouring block
	edge                          // start or end of the document
)

// boundary is the result of scanning outward from the caret.
type boundary struct {
	pos  document.Position
	kind boundaryKind
}

func (b boundary) encloses() bool {
	return b.kind == enclosing
}

type direction int

const (
	upward   direction = -1
	downward direction = 1
)

// scanOutward walks lines from the caret in direction dir until a line
// contains a brace. It never returns without a boundary; running off the
// document yields an edge boundary.
func scanOutward(doc document.Document, caret document.Position, dir direction) boundary {
	for l := caret.Line; l >= 0 && l < doc.LineCount(); l += int(dir) {
		text, offset := doc.LineAt(l).Text, 0
		if l == caret.Line {
			if dir == upward {
				text = text[:caret.Character]
			} else {
				text, offset = text[caret.Character:], caret.Character
			}
		}
		if char, kind, found := dir.braceIn(text); found {
			return boundary{pos: document.Pos(l, offset+char), kind: kind}
		}
	}
	if dir == upward {
		return boundary{pos: document.Pos(0, 0), kind: edge}
	}
	return boundary{pos: document.LastLine(doc), kind: edge}
}

// braceIn inspects a single line for the brace relevant to a scan
// direction. Looking upward, the last brace on the line decides; an opening
// brace yields the position just after it. Looking downward, the first
// brace decides and yields its own position.
func (dir direction) braceIn(text string) (int, boundaryKind, bool) {
	if dir == upward {
		lbrace, rbrace := strings.LastIndexByte(text, '{'), strings.LastIndexByte(text, '}')
		switch {
		case lbrace > rbrace:
			return lbrace + 1, enclosing, true
		case rbrace != -1:
			return rbrace + 1, foreign, true
		}
		return 0, edge, false
	}
	lbrace, rbrace := strings.IndexByte(text, '{'), strings.IndexByte(text, '}')
	switch {
	case rbrace != -1 && (lbrace == -1 || rbrace < lbrace):
		return rbrace, enclosing, true
	case lbrace != -1:
		return lbrace, foreign, true
	}
	return 0, edge, false
}
