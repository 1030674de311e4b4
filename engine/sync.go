package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/npillmayer/cssprefix/cssom"
	"github.com/npillmayer/cssprefix/document"
)

var (
	// ErrApplyFailed is returned by SyncAll if the editor rejects edits.
	ErrApplyFailed = errors.New("editor rejected prefix edits")
	// ErrBusy is returned by SyncAll if another pass is in progress.
	ErrBusy = errors.New("prefixing pass in progress")
)

// SyncAll runs a pass for every declaration of a configured property in
// the editor's document, in document order, as if the caret had been put
// right after each declaration's colon. It returns the number of passes
// which changed the document. The selection is left where the last pass
// put it.
func SyncAll(ctx context.Context, ed Editor, e *Engine) (int, error) {
	var props []string
	for _, p := range e.conf.Load().Properties() {
		if !strings.HasPrefix(p, "-") { // prefixed names are never rescanned
			props = append(props, p)
		}
	}
	applied := 0
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		// passes change the document, so positions are rescanned every time
		decls := cssom.Declarations(ed.Document().Text(), props)
		if i >= len(decls) {
			break
		}
		// moving the caret may already trigger a pass by the host
		before := ed.Document().Text()
		ed.SetSelection(document.Caret(decls[i].Value))
		switch outcome := e.Update(ctx, ed); outcome {
		case ApplyFailed:
			return applied, ErrApplyFailed
		case Busy:
			return applied, ErrBusy
		default:
			tracer().Debugf("%s at %s: %s", decls[i].Property, decls[i].Value, outcome)
		}
		if ed.Document().Text() != before {
			applied++
		}
	}
	tracer().Infof("synced %d declarations", applied)
	return applied, nil
}
