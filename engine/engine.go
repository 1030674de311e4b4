package engine

import (
	"context"
	"sync/atomic"

	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/result"
)

// Editor is the part of a host editor a pass works with.
//
// Apply applies a batch of edits atomically, positions referring to the
// document before the batch, and reports the number of edits applied. It
// may notify selection listeners before it returns.
type Editor interface {
	Document() document.Document
	Selection() document.Selection
	SetSelection(document.Selection)
	Apply(ctx context.Context, edits []document.TextEdit, opts document.ApplyOptions) result.Result[int]
}

// Engine runs prefixing passes for caret move events. An Engine may serve
// several editors, but runs at most one pass at a time.
type Engine struct {
	conf  *config.Store
	state atomic.Int32
}

// New creates an engine reading its configuration from conf. A nil store
// is replaced by one holding the default configuration.
func New(conf *config.Store) *Engine {
	if conf == nil {
		conf = config.NewStore(nil)
	}
	return &Engine{conf: conf}
}

// Config returns the engine's configuration store.
func (e *Engine) Config() *config.Store {
	return e.conf
}

// Reconfigure installs the configuration read from src. If src is
// malformed, the engine keeps its current configuration.
func (e *Engine) Reconfigure(src config.Source) error {
	return e.conf.Reload(src)
}

// Update runs a pass for the editor's current selection. It is meant to be
// called for every caret move or selection change. Passes never fail
// loudly: the outcome tells what happened, and problems applying edits
// are reported on the error trace.
func (e *Engine) Update(ctx context.Context, ed Editor) Outcome {
	if !e.enter(Idle, Computing) {
		tracer().Debugf("pass in progress, caret move dropped")
		return Busy
	}
	doc, sel := ed.Document(), ed.Selection()
	plan, outcome := Compute(doc, sel, e.conf.Load())
	if outcome != Planned {
		tracer().Debugf("no edits: %s", outcome)
		e.enter(Computing, Idle)
		return outcome
	}
	e.enter(Computing, Applying)
	defer e.enter(Applying, Idle)
	return e.apply(ctx, ed, doc, plan)
}

func (e *Engine) apply(ctx context.Context, ed Editor, before document.Document, plan Plan) (outcome Outcome) {
	batch := plan.TextEdits()
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("editor failed applying %d edits: %v", len(batch), r)
			outcome = ApplyFailed
		}
	}()
	var n int
	var err error
	switch m := ed.Apply(ctx, batch, document.ApplyOptions{}).Match(); m {
	case m.Ok(&n):
		caret := mapCaret(plan.Caret, batch, before, ed.Document())
		ed.SetSelection(document.Caret(caret))
		tracer().Debugf("applied %d edits for %q", n, plan.Token)
		return Applied
	case m.Err(&err):
		tracer().Errorf("cannot apply %d edits for %q: %v", len(batch), plan.Token, err)
	}
	return ApplyFailed
}

// mapCaret returns where caret, a position in document before, ends up in
// document after, once batch has been applied. Text inserted exactly at
// the caret goes after it.
func mapCaret(caret document.Position, batch []document.TextEdit, before, after document.Document) document.Position {
	off := document.OffsetOf(before, caret)
	delta := 0
	for _, e := range batch {
		from, to := document.OffsetOf(before, e.Range.Start), document.OffsetOf(before, e.Range.End)
		if to < off || (to == off && from < to) {
			delta += len(e.NewText) - (to - from)
		}
	}
	return document.PositionOf(after, off+delta)
}
