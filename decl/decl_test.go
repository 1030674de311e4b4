package decl_test

import (
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/cssprefix/block"
	"github.com/npillmayer/cssprefix/decl"
	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenAt(t *testing.T) {
	tests := []struct {
		line  string
		caret int // -1: end of line
		token string
	}{
		{"  transform: rotate(5deg);", 25, "transform"},
		{"a { color:red", -1, "color"},
		{"  transform : x", -1, "transform"},
		{"a;b:c", -1, "b"},
		{"  transform: x; transition: y", -1, "transition"},
		{"  transform: x; transition: y", 14, "transform"},
		{"\t-webkit-box-flex: 1", -1, "-webkit-box-flex"},
		{"no colon here", -1, ""},
		{"  : x", -1, ""},
		{"  color: red", 3, ""},
	}
	for _, tt := range tests {
		caret := tt.caret
		if caret < 0 {
			caret = len(tt.line)
		}
		token := decl.TokenAt(document.Pos(0, caret), tt.line).WithDefault("")
		if token != tt.token {
			t.Errorf("%q@%d: expected token %q, have %q", tt.line, caret, tt.token, token)
		}
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		text, token string
		value       string
		found       bool
	}{
		{"a { color: red; }", "color", " red", true},
		{"\n  color: red\n  margin: 0", "color", " red", true},
		{"color: red margin: 0", "color", " red ", true},
		{"background: url(http://x)", "background", " url(", true}, // known approximation
		{"transform :a", "transform", "a", true},
		{"{transform:}", "transform", "}", true},
		{"a.b: 1;", "a.b", " 1", true},
		{"-webkit-transform: a", "transform", "", false},
		{"axb: 1;", "a.b", "", false},
		{"transition: transform 1s", "transform", "", false},
	}
	for _, tt := range tests {
		var v string
		found := false
		switch m := decl.ValueOf(tt.text, tt.token).Match(); m {
		case m.Just(&v):
			found = true
		case m.Nothing():
		}
		if found != tt.found || v != tt.value {
			t.Errorf("%q / %q: expected (%q, %v), have (%q, %v)", tt.text, tt.token, tt.value, tt.found, v, found)
		}
	}
}

// session locates the block around the '|' marker of input.
func session(t *testing.T, input string) (*document.Buffer, block.Block) {
	t.Helper()
	i := strings.IndexByte(input, '|')
	require.GreaterOrEqual(t, i, 0, "input needs a caret marker")
	buf := document.NewBuffer(input[:i]+input[i+1:], "css")
	caret := buf.Snapshot().PositionAt(i)
	var b block.Block
	switch m := block.Locate(caret, buf.Document()).Match(); m {
	case m.Just(&b):
	case m.Nothing():
		t.Fatalf("no block around caret in %q", input)
	}
	return buf, b
}

// applyPlan plans pairs for the block around the caret and applies the
// translated edits.
func applyPlan(t *testing.T, input string, pairs []decl.Pair) (string, []decl.Edit) {
	t.Helper()
	buf, b := session(t, input)
	edits := decl.Plan(b, buf.Document(), pairs)
	batch := make([]document.TextEdit, len(edits))
	for i, e := range edits {
		batch[i] = e.Translate(b.Start).TextEdit()
	}
	res := buf.Apply(context.Background(), batch, document.ApplyOptions{})
	require.NoError(t, res.Error())
	return buf.Text(), edits
}

func prefixed(value string, tokens ...string) []decl.Pair {
	pairs := make([]decl.Pair, len(tokens))
	for i, tok := range tokens {
		pairs[i] = decl.Pair{Token: tok, Value: value}
	}
	return pairs
}

func TestPlanInsertsMissingDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.decl")
	defer teardown()
	//
	text, edits := applyPlan(t, "a {\n  transform: rotate(5deg)|;\n}",
		prefixed(" rotate(5deg)", "-webkit-transform", "-moz-transform"))
	require.Len(t, edits, 2)
	assert.Equal(t, decl.Insertion, edits[0].Kind)
	assert.Equal(t, document.Pos(2, 0), edits[0].Range.Start)
	assert.Equal(t, "a {\n"+
		"  transform: rotate(5deg);\n"+
		"  -webkit-transform: rotate(5deg);\n"+
		"  -moz-transform: rotate(5deg);\n"+
		"}", text)
}

func TestPlanReplacesOnlyTheValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.decl")
	defer teardown()
	//
	input := "a {\n  transform: scale(2)|;\n  -webkit-transform: scale(1); color: red;\n}"
	text, edits := applyPlan(t, input, prefixed(" scale(2)", "-webkit-transform"))
	require.Len(t, edits, 1)
	e := edits[0]
	assert.Equal(t, decl.Replacement, e.Kind)
	assert.Equal(t, " scale(1)", e.Replaced)
	assert.Equal(t, document.NewRange(document.Pos(2, 20), document.Pos(2, 29)), e.Range)
	assert.Equal(t, "a {\n  transform: scale(2);\n  -webkit-transform: scale(2); color: red;\n}", text)
}

func TestPlanSingleLineBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.decl")
	defer teardown()
	//
	text, _ := applyPlan(t, "a { transform: x|; }", prefixed(" x", "-o-transform"))
	assert.Equal(t, "a { transform: x;  -o-transform: x; }", text)

	text, edits := applyPlan(t, "a { -o-transform: y; transform: x|; }", prefixed(" x", "-o-transform"))
	require.Len(t, edits, 1)
	assert.Equal(t, document.Pos(0, 14), edits[0].Range.Start, "planned positions are block-relative")
	assert.Equal(t, document.Pos(0, 17), edits[0].Translate(document.Pos(0, 3)).Range.Start)
	assert.Equal(t, "a { -o-transform: x; transform: x; }", text)
}

func TestPlanIndentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.decl")
	defer teardown()
	//
	text, _ := applyPlan(t, "@media print {\n  a {\n    transform: x|;\n  }\n}", prefixed(" x", "-o-transform"))
	assert.Equal(t, "@media print {\n  a {\n    transform: x;\n    -o-transform: x;\n  }\n}", text)

	text, _ = applyPlan(t, "a {\ntransform: x|;\n}", prefixed(" x", "-o-transform"))
	assert.Equal(t, "a {\ntransform: x;\n\t-o-transform: x;\n}", text, "default indentation is a tab")
}

func TestPlanRoundTrip(t *testing.T) {
	inputs := []string{
		"a {\n  transform: rotate(5deg)|;\n}",
		"a { transform: x|; color: red }",
		"a {\n  color: red; transform: x|\n}",
	}
	for _, input := range inputs {
		_, b := session(t, input)
		old := decl.ValueIn(b, "transform")
		require.False(t, old.IsNothing(), "expected a transform declaration in %q", input)
		text, edits := applyPlan(t, input, []decl.Pair{{Token: "transform", Value: " scale(3)"}})
		require.Len(t, edits, 1)
		assert.Equal(t, old.WithDefault(""), edits[0].Replaced, "planner must replace what the reader read")
		assert.Equal(t, " scale(3)", decl.ValueOf(text, "transform").WithDefault("<none>"), "for %q", input)
	}
}

func TestPlanNoOpReplacement(t *testing.T) {
	_, edits := applyPlan(t, "a {\n  transform: x|;\n  -o-transform: x;\n}", prefixed(" x", "-o-transform"))
	require.Len(t, edits, 1)
	assert.True(t, edits[0].IsNoOp())
	assert.False(t, decl.Insert(document.Pos(0, 0), "").IsNoOp())
}
