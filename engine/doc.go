/*
Package engine implements the prefixing pass: on every caret move it finds
the property declaration being edited and brings the prefixed variants of
that property in line with it.

A pass runs through three states:

    Idle ──caret moved──▶ Computing ──edits planned──▶ Applying
      ▲                       │                            │
      └───────aborted─────────┘◀───────────done────────────┘

Compute is the pure part of a pass. It checks whether prefixing applies at
all (enabled, CSS or SCSS document, empty selection, caret not inside a
comment), locates the enclosing block, the property under the caret and
its value, and plans the edits for the configured prefixes. An Engine adds
the side effects: it hands the edits to the editor as one batch, without
undo stops, and keeps the caret on the character it was at.

Applying edits makes the editor report a caret move of its own. Such
events arrive while the engine is not Idle and are dropped; this is what
keeps a pass from triggering itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.engine")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cssprefix.engine: "+msg, msgargs...)
		panic(msg)
	}
}
