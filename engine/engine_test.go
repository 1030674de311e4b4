package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/cssom"
	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/engine"
	"github.com/npillmayer/cssprefix/result"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// editor creates a buffer from input, with the caret at the '|' marker.
func editor(t *testing.T, input string, lang string) *document.Buffer {
	t.Helper()
	i := strings.IndexByte(input, '|')
	require.GreaterOrEqual(t, i, 0, "input needs a caret marker")
	buf := document.NewBuffer(input[:i]+input[i+1:], lang)
	buf.SetSelection(document.Caret(buf.Snapshot().PositionAt(i)))
	return buf
}

func prefixes(table map[string][]string) *engine.Engine {
	return engine.New(config.NewStore(config.NewSnapshot(true, table)))
}

func TestInsertPrefixedDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"webkit", "moz"}})
	buf := editor(t, "a {\n  transform: rotate(5deg)|;\n}", "css")
	outcome := e.Update(context.Background(), buf)
	assert.Equal(t, engine.Applied, outcome)
	assert.Equal(t, "a {\n"+
		"  transform: rotate(5deg);\n"+
		"  -webkit-transform: rotate(5deg);\n"+
		"  -moz-transform: rotate(5deg);\n"+
		"}", buf.Text())
	assert.Equal(t, document.Caret(document.Pos(1, 25)), buf.Selection())
	assert.Equal(t, engine.Idle, e.State())
	//
	outcome = e.Update(context.Background(), buf)
	assert.Equal(t, engine.Unchanged, outcome, "second pass must not change anything")
	sheet, err := cssom.Parse(buf.Text())
	require.NoError(t, err)
	for _, prop := range []string{"transform", "-webkit-transform", "-moz-transform"} {
		if n := sheet.Rules()[0].Count(prop); n != 1 {
			t.Errorf("expected exactly one declaration of %s, have %d", prop, n)
		}
	}
}

func TestReplaceStaleValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"webkit", "moz"}})
	buf := editor(t, "a {\n  transform: scale(2)|;\n  -webkit-transform: scale(1); -moz-transform: none;\n}", "scss")
	before := buf.Text()
	assert.Equal(t, engine.Applied, e.Update(context.Background(), buf))
	changes := document.Changes(before, buf.Text())
	lines := 0
	for _, c := range changes {
		lines += c.OldLine + c.NewLine
	}
	if len(changes) != 2 || lines != 6 {
		t.Logf("\n%s", document.FormatDiff(document.LineDiff(before, buf.Text())))
		t.Errorf("expected only line 3 to change, have %v", changes)
	}
	assert.Equal(t, "a {\n  transform: scale(2);\n  -webkit-transform: scale(2); -moz-transform: scale(2);\n}", buf.Text())
}

func TestCaretFollowsEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"o"}})
	buf := editor(t, "a { -o-transform: yy; transform: x|; }", "css")
	assert.Equal(t, engine.Applied, e.Update(context.Background(), buf))
	assert.Equal(t, "a { -o-transform: x; transform: x; }", buf.Text())
	assert.Equal(t, document.Caret(document.Pos(0, 33)), buf.Selection())
}

func TestOutcomes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	tests := []struct {
		input, lang string
		outcome     engine.Outcome
	}{
		{"a {\n  /* transform: x| */\n}", "css", engine.InsideComment},
		{"transform: x|;", "css", engine.NoEnclosingBlock},
		{"a {\n|  transform: x;\n}", "css", engine.NoTokenAtCursor},
		{"a { color: red| }", "css", engine.UnconfiguredToken},
		{"a { transform: x| }", "javascript", engine.UnsupportedLanguage},
		{"|", "css", engine.EmptyDocument},
		{"a { transform: x|; -o-transform: x; }", "css", engine.Unchanged},
	}
	for _, tt := range tests {
		e := prefixes(map[string][]string{"transform": {"o"}})
		buf := editor(t, tt.input, tt.lang)
		before := buf.Text()
		if outcome := e.Update(context.Background(), buf); outcome != tt.outcome {
			t.Errorf("%q: expected outcome %s, have %s", tt.input, tt.outcome, outcome)
		}
		assert.Equal(t, before, buf.Text(), "document must be untouched for %q", tt.input)
		assert.Equal(t, engine.Idle, e.State())
	}
}

func TestDisabledAndSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	off := engine.New(config.NewStore(config.NewSnapshot(false, map[string][]string{"transform": {"o"}})))
	buf := editor(t, "a { transform: x| }", "css")
	assert.Equal(t, engine.Disabled, off.Update(context.Background(), buf))
	//
	e := prefixes(map[string][]string{"transform": {"o"}})
	buf.SetSelection(document.Selection{Anchor: document.Pos(0, 4), Active: document.Pos(0, 16)})
	assert.Equal(t, engine.SelectionNotEmpty, e.Update(context.Background(), buf))
	assert.Equal(t, "a { transform: x }", buf.Text())
}

func TestReentrantUpdateIsBusy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"webkit"}})
	buf := editor(t, "a {\n  transform: x|;\n}", "css")
	var nested []engine.Outcome
	cancel := buf.OnSelectionChange(func(document.Selection) {
		nested = append(nested, e.Update(context.Background(), buf))
	})
	defer cancel()
	assert.Equal(t, engine.Applied, e.Update(context.Background(), buf))
	require.NotEmpty(t, nested, "buffer must notify listeners while applying")
	for _, o := range nested {
		assert.Equal(t, engine.Busy, o)
	}
	assert.Equal(t, 1, strings.Count(buf.Text(), "-webkit-transform"))
	assert.Equal(t, engine.Idle, e.State())
}

type rejectingEditor struct {
	*document.Buffer
	panics bool
}

func (r rejectingEditor) Apply(ctx context.Context, edits []document.TextEdit, opts document.ApplyOptions) result.Result[int] {
	if r.panics {
		panic("editor crashed")
	}
	return result.Failed[int]("document is read-only")
}

func TestApplyFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	for _, panics := range []bool{false, true} {
		e := prefixes(map[string][]string{"transform": {"webkit"}})
		buf := editor(t, "a {\n  transform: x|;\n}", "css")
		ed := rejectingEditor{Buffer: buf, panics: panics}
		assert.Equal(t, engine.ApplyFailed, e.Update(context.Background(), ed))
		assert.Equal(t, engine.Idle, e.State(), "engine must recover after a failed pass")
		assert.Equal(t, engine.Applied, e.Update(context.Background(), buf))
	}
	e := prefixes(map[string][]string{"transform": {"webkit"}})
	buf := editor(t, "a {\n  transform: x|;\n}", "css")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, engine.ApplyFailed, e.Update(ctx, buf))
	assert.NotContains(t, buf.Text(), "-webkit-")
}

func TestReconfigure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := engine.New(nil)
	assert.Equal(t, config.Default().Properties(), e.Config().Load().Properties())
	err := e.Reconfigure(config.MapSource{
		config.KeyPrefixes: map[string]interface{}{"transform": []interface{}{"o"}},
	})
	require.NoError(t, err)
	err = e.Reconfigure(config.MapSource{config.KeyEnabled: "maybe"})
	assert.True(t, errors.Is(err, config.ErrInvalid))
	buf := editor(t, "a { transform: x|; }", "css")
	assert.Equal(t, engine.Applied, e.Update(context.Background(), buf))
	assert.Equal(t, "a { transform: x;  -o-transform: x; }", buf.Text())
}

func TestTypingSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"o"}})
	buf := editor(t, "a {\n  |\n}", "css")
	var outcomes []engine.Outcome
	cancel := buf.OnSelectionChange(func(document.Selection) {
		if o := e.Update(context.Background(), buf); o != engine.Busy {
			outcomes = append(outcomes, o)
		}
	})
	for _, r := range "transform: x;" {
		require.NoError(t, buf.Type(string(r)))
	}
	cancel()
	assert.Equal(t, "a {\n  transform: x;\n  -o-transform: x;\n}", buf.Text())
	assert.Equal(t, document.Caret(document.Pos(1, 15)), buf.Selection())
	assert.Equal(t, engine.Unchanged, outcomes[len(outcomes)-1])
	applied := 0
	for _, o := range outcomes {
		if o == engine.Applied {
			applied++
		}
	}
	assert.Equal(t, 3, applied, "insert on ':', replace on ' ' and 'x'")
}

func TestUndoRevertsKeystrokeWithEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"o"}})
	buf := editor(t, "a {\n  transform: x|;\n}", "css")
	cancel := buf.OnSelectionChange(func(document.Selection) {
		e.Update(context.Background(), buf)
	})
	require.NoError(t, buf.Type("y"))
	cancel()
	assert.Equal(t, "a {\n  transform: xy;\n  -o-transform: xy;\n}", buf.Text())
	assert.Equal(t, 1, buf.UndoDepth())
	assert.True(t, buf.Undo())
	assert.Equal(t, "a {\n  transform: x;\n}", buf.Text())
}

func TestPlanTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	buf := editor(t, "a {\n  transform: x|;\n  -o-transform: x;\n}", "css")
	conf := config.NewSnapshot(true, map[string][]string{"transform": {"webkit", "o"}})
	plan, outcome := engine.Compute(buf.Document(), buf.Selection(), conf)
	require.Equal(t, engine.Planned, outcome)
	assert.Equal(t, "transform", plan.Token)
	assert.Equal(t, " x", plan.Value)
	assert.Len(t, plan.TextEdits(), 1)
	tree := plan.Tree()
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, "-webkit-transform")
	assert.Contains(t, tree, "up to date")
}

func TestSyncAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssprefix.engine")
	defer teardown()
	//
	e := prefixes(map[string][]string{"transform": {"webkit"}, "transition": {"webkit"}})
	buf := document.NewBuffer("a {\n  transform: x;\n}\n"+
		"b {\n  transition: y;\n  -webkit-transition: z;\n}", "css")
	n, err := engine.SyncAll(context.Background(), buf, e)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "a {\n  transform: x;\n  -webkit-transform: x;\n}\n"+
		"b {\n  transition: y;\n  -webkit-transition: y;\n}", buf.Text())
	//
	n, err = engine.SyncAll(context.Background(), buf, e)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	//
	n, err = engine.SyncAll(context.Background(), rejectingEditor{Buffer: document.NewBuffer("a { transform: q }", "css")}, e)
	assert.Equal(t, 0, n)
	assert.True(t, errors.Is(err, engine.ErrApplyFailed))
}
