package document

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cssprefix/result"
)

// Buffer is an in-memory editor holding a document, a selection and an
// undo history. It is the host side of a prefixing session: it applies
// edit batches atomically and tells listeners whenever the selection may
// have changed, including after edits.
//
// A Buffer is not safe for concurrent use. Listeners are called
// synchronously and may call back into the buffer.
type Buffer struct {
	doc       *Snapshot
	sel       Selection
	undo      []string // document text before each undo group
	sealed    bool     // next batch starts a new undo group
	listeners map[int]func(Selection)
	nextID    int
}

// NewBuffer creates an editor buffer for text with the caret at the start.
func NewBuffer(text string, languageID string) *Buffer {
	return &Buffer{
		doc:       NewSnapshot(text, languageID),
		listeners: make(map[int]func(Selection)),
		sealed:    true,
	}
}

// Document returns the current snapshot.
func (b *Buffer) Document() Document {
	return b.doc
}

// Snapshot returns the current snapshot with its offset helpers.
func (b *Buffer) Snapshot() *Snapshot {
	return b.doc
}

// Text is short for Document().Text().
func (b *Buffer) Text() string {
	return b.doc.Text()
}

func (b *Buffer) Selection() Selection {
	return b.sel
}

// SetSelection moves the selection and notifies listeners.
func (b *Buffer) SetSelection(sel Selection) {
	b.sel = Selection{Anchor: b.doc.Clamp(sel.Anchor), Active: b.doc.Clamp(sel.Active)}
	b.notify()
}

// OnSelectionChange registers a listener. The returned function
// unregisters it.
func (b *Buffer) OnSelectionChange(f func(Selection)) (cancel func()) {
	id := b.nextID
	b.nextID++
	b.listeners[id] = f
	return func() {
		delete(b.listeners, id)
	}
}

func (b *Buffer) notify() {
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if f, ok := b.listeners[id]; ok {
			f(b.sel)
		}
	}
}

// Apply applies a batch of edits as one atomic change. Positions refer to
// the document as it was before the batch. Insertions at the same position
// are inserted in batch order. Overlapping or out-of-range edits reject
// the whole batch. On success, the number of edits applied is returned and
// listeners are notified.
func (b *Buffer) Apply(ctx context.Context, edits []TextEdit, opts ApplyOptions) result.Result[int] {
	if err := ctx.Err(); err != nil {
		return result.Err[int](err)
	}
	if err := b.apply(edits, opts); err != nil {
		tracer().Debugf("rejected edit batch: %v", err)
		return result.Err[int](err)
	}
	b.notify()
	return result.Ok(len(edits))
}

// Type simulates a keystroke: text replaces the current selection and the
// caret is placed after it. Typing always starts a new undo group.
func (b *Buffer) Type(text string) error {
	from := b.doc.Offset(b.sel.Start())
	edit := TextEdit{Range: b.sel.Range(), NewText: text}
	if err := b.apply([]TextEdit{edit}, ApplyOptions{UndoStopBefore: true}); err != nil {
		return err
	}
	b.sel = Caret(b.doc.PositionAt(from + len(text)))
	b.notify()
	return nil
}

// Undo reverts the most recent undo group. It returns false if there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	prev := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.doc = NewSnapshot(prev, b.doc.LanguageID())
	b.sealed = true
	b.sel = Selection{Anchor: b.doc.Clamp(b.sel.Anchor), Active: b.doc.Clamp(b.sel.Active)}
	b.notify()
	return true
}

// UndoDepth is the number of undo groups recorded.
func (b *Buffer) UndoDepth() int {
	return len(b.undo)
}

type offsetEdit struct {
	from, to int
	text     string
}

func (b *Buffer) apply(edits []TextEdit, opts ApplyOptions) error {
	oedits := make([]offsetEdit, len(edits))
	for i, e := range edits {
		if !b.doc.Valid(e.Range.Start) || !b.doc.Valid(e.Range.End) {
			return fmt.Errorf("edit %d: range %s outside of document", i, e.Range)
		}
		r := NewRange(e.Range.Start, e.Range.End)
		oedits[i] = offsetEdit{
			from: b.doc.Offset(r.Start),
			to:   b.doc.Offset(r.End),
			text: e.NewText,
		}
	}
	sort.SliceStable(oedits, func(i, j int) bool {
		return oedits[i].from < oedits[j].from
	})
	old := b.doc.Text()
	var out strings.Builder
	out.Grow(len(old))
	at := 0
	for i, e := range oedits {
		if e.from < at {
			return fmt.Errorf("edit %d overlaps a preceding edit", i)
		}
		out.WriteString(old[at:e.from])
		out.WriteString(e.text)
		at = e.to
	}
	out.WriteString(old[at:])
	if opts.UndoStopBefore || b.sealed || len(b.undo) == 0 {
		b.undo = append(b.undo, old)
	}
	b.sealed = opts.UndoStopAfter
	b.doc = NewSnapshot(out.String(), b.doc.LanguageID())
	b.sel = Selection{Anchor: b.doc.Clamp(b.sel.Anchor), Active: b.doc.Clamp(b.sel.Active)}
	assertThat(b.doc.Valid(b.sel.Active), "selection %s invalid after edit", b.sel)
	return nil
}
