/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or removal) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of parts of the structure only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

The vector is backed by a bit-partitioned trie with a small tail buffer: the most
recently appended elements live in the tail until it fills up, at which point the
tail is folded into the trie as a leaf. Appending and removing at the end therefore
touch the trie only once per 32 operations (with the default node degree of 32).

Immutable vectors are inherently concurrency-safe: nodes are never mutated after
they become reachable from a published vector value, so arbitrarily many readers
may enumerate different versions simultaneously without coordination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.vector'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.vector")
}
