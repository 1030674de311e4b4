package decl

import (
	"strings"

	"github.com/npillmayer/cssprefix/block"
	"github.com/npillmayer/cssprefix/document"
)

// Pair is a property together with the value it should have.
type Pair struct {
	Token string
	Value string
}

// defaultIndent is used for inserted declarations if neither the block's
// lines nor the block itself show any indentation.
const defaultIndent = "\t"

// blockLine is a line of a block's interior. Text is cut to the block's
// boundaries; on the block's first line, characters count from the block
// start.
type blockLine struct {
	number int
	text   string
}

func linesOf(b block.Block, doc document.Document) []blockLine {
	if b.Start.Line == b.End.Line {
		text := doc.LineAt(b.Start.Line).Text
		return []blockLine{{b.Start.Line, cutLine(text, b.Start.Character, b.End.Character)}}
	}
	lines := make([]blockLine, 0, b.End.Line-b.Start.Line+1)
	for l := b.Start.Line; l <= b.End.Line; l++ {
		text := doc.LineAt(l).Text
		switch l {
		case b.Start.Line:
			text = cutLine(text, b.Start.Character, len(text))
		case b.End.Line:
			text = cutLine(text, 0, b.End.Character)
		}
		lines = append(lines, blockLine{l, text})
	}
	return lines
}

func cutLine(s string, from, to int) string {
	from = max(0, min(from, len(s)))
	to = max(from, min(to, len(s)))
	return s[from:to]
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// Plan computes the edits which make block b declare every property of
// pairs with the given value. Pairs are planned independently against the
// unmodified document:
//
// If a line of the block declares the property, the value of the first such
// declaration is replaced, and nothing else on the line is touched.
// Otherwise a new declaration is appended at the end of the block, indented
// like the lines before it. If the block's last line is blank (the closing
// brace is on a line of its own), the declaration goes on a new line in
// front of it; otherwise it is appended to the last line, separated by a
// space.
//
// Edits for several insertions at the same position are returned in the
// order of pairs.
func Plan(b block.Block, doc document.Document, pairs []Pair) []Edit {
	lines := linesOf(b, doc)
	last := lines[len(lines)-1]
	lastBlank := strings.TrimSpace(last.text) == ""
	edits := make([]Edit, 0, len(pairs))
next:
	for _, pair := range pairs {
		m := NewMatcher(pair.Token)
		indent := ""
		for i, line := range lines {
			if ws := leadingWhitespace(line.text); ws != "" && !(lastBlank && i == len(lines)-1) {
				indent = ws
			}
			if from, to, found := m.Value(line.text); found {
				r := document.NewRange(document.Pos(line.number, from), document.Pos(line.number, to))
				edits = append(edits, Replace(r, line.text[from:to], pair.Value))
				continue next
			}
		}
		if indent == "" {
			indent = b.Indent
		}
		if indent == "" {
			indent = defaultIndent
		}
		decl := indent + pair.Token + ":" + pair.Value + ";"
		if lastBlank {
			edits = append(edits, Insert(document.Pos(last.number, 0), decl+"\n"))
		} else {
			edits = append(edits, Insert(document.Pos(last.number, len(last.text)), decl+" "))
		}
	}
	tracer().Debugf("planned %d edits for %d properties", len(edits), len(pairs))
	return edits
}
