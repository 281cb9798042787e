package dict

import (
	"github.com/npillmayer/pcoll/maybe"
)

// Dict is an immutable dictionary, mapping keys of type K to values of type V.
// Every “mutating” operation returns a new incarnation of the dictionary,
// leaving the original unchanged.
//
// Unlike the trie-backed vector, a Dict simply delegates to a native Go map
// and copies it wholesale on modification. There is no structural sharing at
// the node level; Dict buys persistence semantics, not asymptotics.
//
// Enumeration order is the insertion order of keys, deterministically. A key
// keeps its position when its value is replaced, and is appended anew after
// having been removed.
//
// The zero value is an empty dictionary ready for use.
type Dict[K comparable, V any] struct {
	entries map[K]V
	keys    []K // insertion order
}

// Immutable creates an empty dictionary.
func Immutable[K comparable, V any]() Dict[K, V] {
	return Dict[K, V]{}
}

// Len returns the number of entries of a dictionary.
func (d Dict[K, V]) Len() int {
	return len(d.entries)
}

// Find locates key in a dictionary and returns the associated value, or
// Nothing if key is not present.
func (d Dict[K, V]) Find(key K) maybe.Maybe[V] {
	if v, ok := d.entries[key]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[V]()
}

// With returns a copy of a dictionary with key associated to value. If key is
// already present, its value is replaced (in a new incarnation of the
// dictionary, nevertheless), keeping its position in enumeration order.
func (d Dict[K, V]) With(key K, value V) Dict[K, V] {
	tracer().Debugf("dict.With %v -> %v", key, value)
	_, present := d.entries[key]
	entries := make(map[K]V, len(d.entries)+1)
	for k, v := range d.entries {
		entries[k] = v
	}
	entries[key] = value
	keys := make([]K, len(d.keys), len(d.keys)+1)
	copy(keys, d.keys)
	if !present {
		keys = append(keys, key)
	}
	return Dict[K, V]{entries: entries, keys: keys}
}

// Without returns a copy of a dictionary with key removed, if present.
// If key is not found, the dictionary is returned unchanged.
func (d Dict[K, V]) Without(key K) Dict[K, V] {
	if _, present := d.entries[key]; !present {
		return d // no need for modification
	}
	tracer().Debugf("dict.Without %v", key)
	entries := make(map[K]V, len(d.entries)-1)
	for k, v := range d.entries {
		if k != key {
			entries[k] = v
		}
	}
	keys := make([]K, 0, len(d.keys)-1)
	for _, k := range d.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	return Dict[K, V]{entries: entries, keys: keys}
}

// Keys returns the keys of a dictionary in insertion order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Each enumerates the entries of a dictionary in insertion order of keys,
// stopping early as soon as f returns false.
func (d Dict[K, V]) Each(f func(K, V) bool) {
	for _, k := range d.keys {
		if !f(k, d.entries[k]) {
			return
		}
	}
}
