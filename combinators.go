package pcoll

import (
	"github.com/npillmayer/pcoll/maybe"
	"github.com/npillmayer/pcoll/persistent/vector"
)

// Combinators over Seqs. All of them enumerate their input eagerly and return
// either a scalar or a fresh slice-backed Seq; the input is never modified.

// Map applies f to every element of s, preserving order.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	r := make(sliceSeq[B], 0, s.Len())
	s.Each(func(x A) bool {
		r = append(r, f(x))
		return true
	})
	return r
}

// Filter keeps the elements of s for which pred holds, preserving order.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	r := make(sliceSeq[T], 0, s.Len())
	s.Each(func(x T) bool {
		if pred(x) {
			r = append(r, x)
		}
		return true
	})
	return r
}

// Reduce folds s from the left: f is applied to a running accumulator,
// starting out as zero, and each element in turn.
func Reduce[A, B any](s Seq[A], f func(B, A) B, zero B) B {
	acc := zero
	s.Each(func(x A) bool {
		acc = f(acc, x)
		return true
	})
	return acc
}

// Find returns the first element of s for which pred holds, or Nothing.
func Find[T any](s Seq[T], pred func(T) bool) maybe.Maybe[T] {
	r := maybe.Nothing[T]()
	s.Each(func(x T) bool {
		if pred(x) {
			r = maybe.Just(x)
			return false
		}
		return true
	})
	return r
}

// TakeWhile returns the longest prefix of s for which pred holds.
func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	var r sliceSeq[T]
	s.Each(func(x T) bool {
		if !pred(x) {
			return false
		}
		r = append(r, x)
		return true
	})
	return r
}

// DropWhile returns s without the longest prefix for which pred holds.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	var r sliceSeq[T]
	dropping := true
	s.Each(func(x T) bool {
		if dropping && pred(x) {
			return true
		}
		dropping = false
		r = append(r, x)
		return true
	})
	return r
}

// Zip pairs up the elements of s and t, truncating to the shorter of the two.
func Zip[A, B any](s Seq[A], t Seq[B]) Seq[Pair[A, B]] {
	right := Slice(t)
	n := min(s.Len(), len(right))
	r := make(sliceSeq[Pair[A, B]], 0, n)
	s.Each(func(x A) bool {
		if len(r) == n {
			return false
		}
		r = append(r, P(x, right[len(r)]))
		return true
	})
	return r
}

// ZipWithIndex pairs every element of s with its position, starting at 0.
func ZipWithIndex[T any](s Seq[T]) Seq[Pair[int, T]] {
	r := make(sliceSeq[Pair[int, T]], 0, s.Len())
	s.Each(func(x T) bool {
		r = append(r, P(len(r), x))
		return true
	})
	return r
}

// Grouped partitions s into consecutive groups of n elements each; the last
// group may be shorter. Group sizes below 1 are treated as 1.
func Grouped[T any](s Seq[T], n int) Seq[Seq[T]] {
	if n < 1 {
		n = 1
	}
	var r sliceSeq[Seq[T]]
	group := make(sliceSeq[T], 0, n)
	s.Each(func(x T) bool {
		group = append(group, x)
		if len(group) == n {
			r = append(r, group)
			group = make(sliceSeq[T], 0, n)
		}
		return true
	})
	if len(group) > 0 {
		r = append(r, group)
	}
	return r
}

// Sliding returns all windows of n consecutive elements of s, advancing by
// step between windows. Windows are always of full length: a final partial
// window is omitted. Arguments below 1 are treated as 1.
func Sliding[T any](s Seq[T], n, step int) Seq[Seq[T]] {
	if n < 1 {
		n = 1
	}
	if step < 1 {
		step = 1
	}
	elems := Slice(s)
	var r sliceSeq[Seq[T]]
	for at := 0; at+n <= len(elems); at += step {
		window := make(sliceSeq[T], n)
		copy(window, elems[at:at+n])
		r = append(r, window)
	}
	return r
}

// Collect rebuilds a persistent vector from the ordered elements of any Seq.
func Collect[T any](s Seq[T]) vector.Vector[T] {
	v := vector.Immutable[T]()
	s.Each(func(x T) bool {
		v = v.Push(x)
		return true
	})
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
