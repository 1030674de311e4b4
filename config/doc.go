/*
Package config holds the prefixing configuration: whether prefixing is
enabled and which vendor prefixes to maintain for which property.

Configuration is read from a Source, a minimal key/value view of the
host's settings. Two keys are recognized:

    enabled    boolean, defaults to true
    prefixes   mapping of property name to a list of vendor prefixes,
               e.g. transform: [webkit, moz]; defaults to Default()

A Source is converted into an immutable Snapshot. A Store holds the current
snapshot; reloading the configuration swaps in a new snapshot as a whole,
so a pass in progress always sees a consistent configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssprefix.config'.
func tracer() tracing.Trace {
	return tracing.Select("cssprefix.config")
}
