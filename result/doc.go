/*
Package result implements a result type for computations which may fail.

Edit application is the one step of a prefixing pass which is handed to
the host editor and which the host may reject. Instead of relying on
panics or ignored errors, the host answers with a Result, and callers
handle both arms explicitly:

    switch m := r.Match(); m {
    case m.Ok(&n):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result
