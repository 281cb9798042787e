/*
Package pcoll provides persistent collections together with a small set of
functional combinators operating on them.

The collections live in sub-packages (persistent/vector, persistent/dict) and
share a common capability: they produce a finite, restartable, ordered
enumeration of their elements and report a size. That capability is captured
by interface Seq, and everything in this package is written against Seq only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcoll

// Seq is the capability contract consumed by the combinators of this package:
// an ordered, finite collection which can be enumerated repeatedly.
//
// Each calls f for every element in order, stopping early as soon as f
// returns false. Enumeration is restartable: calling Each a second time
// starts over from the first element.
type Seq[T any] interface {
	Len() int
	Each(func(T) bool)
}

// sliceSeq is the canonical Seq implementation, backing combinator results.
type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int {
	return len(s)
}

func (s sliceSeq[T]) Each(f func(T) bool) {
	for _, x := range s {
		if !f(x) {
			return
		}
	}
}

// From wraps values in a Seq, preserving their order.
func From[T any](values ...T) Seq[T] {
	return sliceSeq[T](values)
}

// Slice enumerates s into a freshly allocated slice.
func Slice[T any](s Seq[T]) []T {
	r := make([]T, 0, s.Len())
	s.Each(func(x T) bool {
		r = append(r, x)
		return true
	})
	return r
}

// --- Pair ------------------------------------------------------------------

// Pair is an ordered 2-tuple, produced by Zip and ZipWithIndex.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a shorthand constructor for Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both halves of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// --- Function helpers ------------------------------------------------------

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
