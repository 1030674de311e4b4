package engine

import (
	"strings"

	"github.com/npillmayer/cssprefix/block"
	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/decl"
	"github.com/npillmayer/cssprefix/document"
)

// Plan is the result of computing a pass.
type Plan struct {
	Caret document.Position
	Block block.Block
	Token string      // the property under the caret
	Value string      // its current value, verbatim
	Pairs []decl.Pair // prefixed properties and the value they should have
	Edits []decl.Edit // block-relative, as planned
}

// TextEdits translates the planned edits to document positions and drops
// replacements which would not change anything.
func (p Plan) TextEdits() []document.TextEdit {
	var batch []document.TextEdit
	for _, e := range p.Edits {
		if e.IsNoOp() {
			continue
		}
		batch = append(batch, e.Translate(p.Block.Start).TextEdit())
	}
	return batch
}

// IsStyleSheet tells whether languageID denotes a document the engine
// works on.
func IsStyleSheet(languageID string) bool {
	return strings.EqualFold(languageID, "css") || strings.EqualFold(languageID, "scss")
}

// Compute plans a pass for doc with selection sel. It has no side effects.
// The outcome is Planned if there are edits to apply; otherwise it tells
// why the pass stops.
func Compute(doc document.Document, sel document.Selection, conf *config.Snapshot) (Plan, Outcome) {
	plan := Plan{Caret: sel.Active}
	switch {
	case !conf.Enabled():
		return plan, Disabled
	case !IsStyleSheet(doc.LanguageID()):
		return plan, UnsupportedLanguage
	case doc.LineCount() == 1 && doc.LineAt(0).Text == "":
		return plan, EmptyDocument
	case !sel.IsEmpty():
		return plan, SelectionNotEmpty
	}
	line := doc.LineAt(plan.Caret.Line)
	if block.InBetween(line.Text, plan.Caret.Character, "/*", "*/").Touches() {
		return plan, InsideComment
	}
	switch m := block.Locate(plan.Caret, doc).Match(); m {
	case m.Just(&plan.Block):
	case m.Nothing():
		return plan, NoEnclosingBlock
	}
	switch m := decl.TokenAt(plan.Caret, line.Text).Match(); m {
	case m.Just(&plan.Token):
	case m.Nothing():
		return plan, NoTokenAtCursor
	}
	prefixed := conf.Prefixed(plan.Token)
	if len(prefixed) == 0 {
		return plan, UnconfiguredToken
	}
	plan.Value = decl.ValueIn(plan.Block, plan.Token).WithDefault("")
	plan.Pairs = make([]decl.Pair, len(prefixed))
	for i, name := range prefixed {
		plan.Pairs[i] = decl.Pair{Token: name, Value: plan.Value}
	}
	plan.Edits = decl.Plan(plan.Block, doc, plan.Pairs)
	if len(plan.TextEdits()) == 0 {
		return plan, Unchanged
	}
	return plan, Planned
}
