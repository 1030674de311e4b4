/*
Command cssprefix brings vendor-prefixed declarations of a CSS or SCSS file
in line with the unprefixed ones.

Usage:

    cssprefix [flags] file

Without -at, every declaration of a configured property is synced, as if
the caret had visited each of them. With -at, a single pass is run with the
caret at the given 1-based line and column. The result is written to
stdout, or back to the file with -w. -d prints a line diff instead.

-check does not change anything. It reports prefixed declarations which are
missing or have a different value, and exits with status 1 if there are
any. HTML files are checked by their <style> elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssprefix.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.cmd")
}
