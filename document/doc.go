/*
Package document models the host editor's text buffer as far as prefixing
needs it: line/character positions, ranges, the caret selection, a
read-only line-indexed document snapshot, and batches of text edits.

Positions address lines by zero-based index and characters by byte offset
into the line text, excluding the line terminator. Document snapshots are
immutable; every edit batch applied to a Buffer produces a new snapshot.

Buffer is a complete in-memory editor. It applies edit batches atomically,
keeps undo groups, and re-notifies selection listeners after every change,
just like an interactive editor does. It is used by the command line tool
and by tests as the host editor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.document'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.document")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cssprefix.document: "+msg, msgargs...)
		panic(msg)
	}
}
