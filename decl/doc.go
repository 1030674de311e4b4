/*
Package decl reads and writes property declarations inside a declaration
block, working on raw text only.

Three operations make up a prefixing pass:

    TokenAt   finds the property name left of the colon nearest to the caret
    ValueOf   reads the value of the first declaration of a property
    Plan      computes the edits which make a block declare a list of
              properties with given values

ValueOf and Plan share a Matcher, so the value read for a property is
exactly the text Plan replaces for it. Values are copied verbatim,
including leading whitespace.

A value ends at the next semicolon, at the end of the line, or where
something looking like the next declaration ("word:") starts. The last rule
tolerates missing semicolons while typing. It is an approximation: a value
such as url(http://…) is cut short at "http:".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.decl'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.decl")
}
