/*
Package maybe provides optional values: a Maybe either carries a value of
type T (“Just”) or carries nothing. It is the result type of all lookup-style
operations in this module which may legitimately come up empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value in a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	if !m.tag {
		return matcher[T]{}
	}
	v := m.value
	return matcher[T]{value: &v, tag: true}
}

// WithDefault returns the contained value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the contained value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value contained in x; Nothing stays Nothing.
// Unlike method Map, function Map may change the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match on a Maybe:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    // use v
//	case m.Nothing():
//	    // empty
//	}
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher carries the matched value by reference only, keeping the struct
// comparable even when T itself is not (slices, maps, funcs) — the switch
// idiom above relies on comparing Matcher interface values.
type matcher[T any] struct {
	value *T
	tag   bool
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.tag {
		*v = *mm.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.tag {
		return mm
	}
	return nil
}
