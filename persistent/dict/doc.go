/*
Package dict implements an immutable dictionary with deterministic
(insertion-ordered) enumeration, backed by a native Go map.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.dict'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.dict")
}
