/*
Package block finds the declaration block enclosing a caret.

There is no CSS parser involved. Starting from the caret, the locator scans
outward line by line, upward for the opening brace and downward for the
closing brace. Either scan may run into a foreign brace (a closing brace
above the caret, an opening brace below it) or into the document's edge.
The caret is taken to be inside a block if at least one of the two scans
finds an enclosing brace. This is deliberately tolerant: while a user is
typing, one of the braces is often not there yet.

The caret's own line is special: only text left of the caret counts for the
upward scan, and only text right of the caret for the downward scan. If both
braces are on the caret's line, the block is a single-line block.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package block

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.block'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.block")
}
