/*
Package cssom looks at complete style sheets, as opposed to the caret-local
text analysis of the prefixing pass.

Style sheets are parsed with douceur (github.com/aymerick/douceur) and
wrapped into Stylesheet and Rule adapters. On top of these, Audit reports
prefixed declarations which are missing or out of sync with their
unprefixed property. Declarations finds the source positions of property
declarations with the gorilla/css scanner; the prefixing engine uses them
to run a pass for every declaration of a file.

Style sheets embedded in HTML documents may be extracted with
ExtractStyleElements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.cssom")
}
