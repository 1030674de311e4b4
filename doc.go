/*
Package cssprefix keeps vendor-prefixed CSS declarations in line with the
declarations they are derived from, while the user types.

When the caret moves behind a property declaration such as

    transform: rotate(5deg);

every configured prefixed variant of the property (-webkit-transform,
-moz-transform, …) in the same block is set to the same value, and missing
variants are added at the end of the block.

The package connects the prefixing engine to an editor host. A host
provides the active editor, a configuration source and change
notifications for both; Activate subscribes to them, Deactivate ends the
subscriptions. Session is a host for a single in-memory buffer, used by
the command line tool and tests.

The work is done in sub-packages: block locates the block around the caret,
decl reads property names and values and plans edits, engine runs passes,
config holds the prefix table and cssom audits whole style sheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssprefix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssprefix'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix")
}
