package decl

import (
	"fmt"

	"github.com/npillmayer/cssprefix/document"
)

// EditKind tells insertions from replacements.
type EditKind uint8

const (
	Insertion EditKind = iota
	Replacement
)

func (k EditKind) String() string {
	if k == Replacement {
		return "replace"
	}
	return "insert"
}

// Edit is a change to a block. Edits produced by Plan use block-relative
// positions: characters on the block's first line count from the block's
// start, see Translate.
type Edit struct {
	Kind     EditKind
	Range    document.Range // empty for insertions
	Text     string         // text to insert or replacement text
	Replaced string         // text currently covered by Range
}

// Insert creates an insertion of text at position at.
func Insert(at document.Position, text string) Edit {
	return Edit{Kind: Insertion, Range: document.Empty(at), Text: text}
}

// Replace creates a replacement of old text within r by text.
func Replace(r document.Range, old, text string) Edit {
	return Edit{Kind: Replacement, Range: r, Text: text, Replaced: old}
}

// IsNoOp is true for replacements which would not change anything.
func (e Edit) IsNoOp() bool {
	return e.Kind == Replacement && e.Text == e.Replaced
}

// Translate converts a block-relative edit into document coordinates, given
// the block's start position. Only positions on the block's start line are
// shifted; all other lines are addressed absolutely already.
func (e Edit) Translate(blockStart document.Position) Edit {
	shift := func(p document.Position) document.Position {
		if p.Line == blockStart.Line {
			return p.Translate(0, blockStart.Character)
		}
		return p
	}
	e.Range = document.Range{Start: shift(e.Range.Start), End: shift(e.Range.End)}
	return e
}

// TextEdit converts e for application to a document.
func (e Edit) TextEdit() document.TextEdit {
	return document.TextEdit{Range: e.Range, NewText: e.Text}
}

func (e Edit) String() string {
	if e.Kind == Replacement {
		return fmt.Sprintf("replace %s %q → %q", e.Range, e.Replaced, e.Text)
	}
	return fmt.Sprintf("insert @%s %q", e.Range.Start, e.Text)
}
