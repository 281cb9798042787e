package pcoll

import (
	"github.com/npillmayer/pcoll/maybe"
)

// Partial is a partial function from A to B: a transform paired with a
// predicate describing the domain the transform is defined on. The zero value
// is the empty partial function, defined nowhere.
//
// Composition is done with named functions instead of operators:
// OrElse chains fallbacks, AndThen post-composes a total function, and
// Match dispatches a value to the first of a list of clauses defined for it.
type Partial[A, B any] struct {
	definedAt func(A) bool
	transform func(A) B
}

// When creates a partial function applying transform on the domain described
// by definedAt. A nil definedAt means “defined everywhere”.
func When[A, B any](definedAt func(A) bool, transform func(A) B) Partial[A, B] {
	if definedAt == nil {
		definedAt = func(A) bool { return true }
	}
	return Partial[A, B]{definedAt: definedAt, transform: transform}
}

// DefinedAt tells whether a partial function may be applied to a.
func (p Partial[A, B]) DefinedAt(a A) bool {
	return p.definedAt != nil && p.transform != nil && p.definedAt(a)
}

// Apply applies a partial function to a, returning Nothing if a is outside
// of the function's domain.
func (p Partial[A, B]) Apply(a A) maybe.Maybe[B] {
	if !p.DefinedAt(a) {
		return maybe.Nothing[B]()
	}
	return maybe.Just(p.transform(a))
}

// OrElse combines two partial functions into one, trying p first and falling
// back to q for arguments outside of p's domain.
func (p Partial[A, B]) OrElse(q Partial[A, B]) Partial[A, B] {
	return Partial[A, B]{
		definedAt: func(a A) bool {
			return p.DefinedAt(a) || q.DefinedAt(a)
		},
		transform: func(a A) B {
			if p.DefinedAt(a) {
				return p.transform(a)
			}
			return q.transform(a)
		},
	}
}

// AndThen post-composes a total function f with a partial function p,
// yielding a partial function with p's domain.
func AndThen[A, B, C any](p Partial[A, B], f func(B) C) Partial[A, C] {
	return Partial[A, C]{
		definedAt: p.DefinedAt,
		transform: func(a A) C {
			return f(p.transform(a))
		},
	}
}

// Match applies the first of the given clauses which is defined at a,
// returning Nothing if none is.
func Match[A, B any](a A, clauses ...Partial[A, B]) maybe.Maybe[B] {
	for _, p := range clauses {
		if p.DefinedAt(a) {
			return maybe.Just(p.transform(a))
		}
	}
	return maybe.Nothing[B]()
}
