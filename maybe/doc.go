/*
Package maybe implements an option type for values which may be absent.

The text analysis of this module is full of lookups which may legitimately
find nothing: no enclosing block around the caret, no property name left of
a colon, no declaration of a property inside a block. Package maybe makes
these cases explicit. Clients pattern-match on a Maybe:

    var b block.Block
    switch m := block.Locate(caret, doc).Match(); m {
    case m.Just(&b):
        // use b
    case m.Nothing():
        // nothing found
    }

Values wrapped into a Maybe must be comparable at runtime, as matching
compares matcher values. Do not wrap slices or maps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe
