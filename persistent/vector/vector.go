package vector

import (
	"errors"

	"github.com/npillmayer/pcoll/maybe"
)

// Possible failures of vector operations. Both are deterministic and
// caller-recoverable; a failed call produces no new vector incarnation.
var (
	// ErrIndexOutOfBounds is returned by Get and Set for indexes outside [0, Len).
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrEmptyVector is returned by Pop on a vector of length 0.
	ErrEmptyVector = errors.New("vector: empty vector")
)

// Vector is an immutable persistent sequence of elements of type T.
// Every “mutating” operation returns a new incarnation of the vector, sharing
// as much structure as possible with the original; the original stays valid
// and unchanged, indefinitely.
//
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector, configured by options.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// From creates a vector holding the given values, in order.
func From[T any](values ...T) Vector[T] {
	v := Immutable[T]()
	for _, x := range values {
		v = v.Push(x)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying trie
// for a vector. The degree of the trie will be 2^exp. Accepted exponents are [1…5];
// default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](DegreeExponent(2))
//
// Smaller degrees are mainly useful for tests exercising depth changes.
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 || n > 5 {
			n = int(defaultBits)
		}
		p = props{bits: uint32(n)}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements held by a vector.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Depth returns the number of levels of the backing trie, 0 meaning that all
// elements live in the tail buffer. Diagnostic accessor, mainly for tests.
func (v Vector[T]) Depth() int {
	if v.root == nil {
		return 0
	}
	v.props = v.props.init()
	return int(v.shift/v.bits) + 1
}

// Last returns the last element of a vector, or Nothing for an empty vector.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// At is a convenience around Get, mapping failure to Nothing.
func (v Vector[T]) At(i int) maybe.Maybe[T] {
	x, err := v.Get(i)
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(x)
}

// Get returns the element at index i. It fails with ErrIndexOutOfBounds for
// indexes outside of [0, Len). Get never allocates.
func (v Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= int(v.length) {
		var none T
		return none, ErrIndexOutOfBounds
	}
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		return v.tail[uint32(i)&v.mask], nil
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask]
	}
	return node.leafs[uint32(i)&v.mask], nil
}

// Set returns a copy of a vector with the element at index i replaced by value.
// It fails with ErrIndexOutOfBounds for indexes outside of [0, Len).
// Length and depth of the vector are unchanged.
func (v Vector[T]) Set(i int, value T) (Vector[T], error) {
	if i < 0 || i >= int(v.length) {
		return Vector[T]{}, ErrIndexOutOfBounds
	}
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}, nil
	}
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (uint32(i) >> level) & v.mask
		child := node.children[subidx].clone()
		node.children[subidx] = child
		node = child
	}
	node.leafs[uint32(i)&v.mask] = value
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}, nil
}

// Push returns a copy of a vector with value appended at the end. Push never fails.
func (v Vector[T]) Push(value T) Vector[T] {
	assertThat(v.length < ^uint32(0), "vector size exhausted")
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		tracer().Debugf("tail not full, appending %v to %v", value, v.tail)
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into the trie
	newTail := []T{value}
	assertThat(v.length >= v.degree, "inconsistency: vector.length expected to be ≥ degree")
	trieCount := v.length - v.degree // elements in the trie, before folding in the tail
	if trieCount == 0 {              // tail becomes the very first leaf = the root
		assertThat(v.root == nil, "inconsistency: vector.root expected to be nil")
		return Vector[T]{length: v.length + 1, props: v.props.withShift(0), root: newLeaf(v.tail), tail: newTail}
	}
	if trieCount == v.degree<<v.shift { // trie full at current depth ⇒ push down
		tracer().Debugf("trie at capacity %d, adding a level", trieCount)
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, v.tail)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(v.shift + v.bits), root: newRoot, tail: newTail}
	}
	// still space at the current depth
	return Vector[T]{length: v.length + 1, props: v.props, root: v.pushLeaf(trieCount), tail: newTail}
}

// pushLeaf path-copies from the root down to the parent of the new leaf and
// hangs the (full) tail in as a leaf starting at index leafIndex. All nodes
// off the path are shared with the original.
func (v Vector[T]) pushLeaf(leafIndex uint32) *vnode[T] {
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > v.bits; level -= v.bits {
		subidx := (leafIndex >> level) & v.mask
		child := node.children[subidx]
		if child == nil { // untrodden subtree ⇒ create a fresh path down to the leaf
			node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, v.tail)
			return newRoot
		}
		child = child.clone()
		node.children[subidx] = child
		node = child
	}
	node.children[(leafIndex>>v.bits)&v.mask] = newLeaf(v.tail)
	return newRoot
}

// Pop returns a copy of a vector with the last element removed. It fails with
// ErrEmptyVector if the vector holds no elements.
func (v Vector[T]) Pop() (Vector[T], error) {
	if v.length == 0 {
		return Vector[T]{}, ErrEmptyVector
	}
	v.props = v.props.init()
	if v.length == 1 { // back to the canonical empty vector
		return Vector[T]{props: v.props.withShift(0)}, nil
	}
	if ((v.length - 1) & v.mask) > 0 { // tail keeps at least one element
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{length: v.length - 1, props: v.props, root: v.root, tail: newTail}, nil
	}
	// tail would run empty ⇒ the trie's last leaf becomes the new tail
	newTrieSize := v.length - v.degree - 1
	if newTrieSize == 0 { // root leaf vanishes into the tail
		return Vector[T]{length: v.length - 1, props: v.props.withShift(0), root: nil, tail: v.root.leafs}, nil
	}
	if newTrieSize == 1<<v.shift { // root is left with a single child ⇒ pull up
		tracer().Debugf("trie down to %d elements, dropping a level", newTrieSize)
		return v.lowerTrie(), nil
	}
	return v.popTrie(), nil
}

// lowerTrie removes the root, making its single surviving child the new root,
// and promotes the (sole) leaf of the second subtree to be the new tail.
func (v Vector[T]) lowerTrie() Vector[T] {
	lowerShift := v.shift - v.bits
	newRoot := v.root.children[0]
	node := v.root.children[1] // contains exactly one leaf, along its leftmost path
	for level := lowerShift; level > 0; level -= v.bits {
		node = node.children[0]
	}
	return Vector[T]{length: v.length - 1, props: v.props.withShift(lowerShift), root: newRoot, tail: node.leafs}
}

// popTrie unlinks the trie's last leaf by path-copying its ancestors, sharing
// all untouched siblings, and promotes the leaf to be the new tail.
func (v Vector[T]) popTrie() Vector[T] {
	newTrieSize := v.length - v.degree - 1
	forkPoint := newTrieSize ^ (newTrieSize - 1) // where does the node-path fork?
	var forked bool
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (newTrieSize >> level) & v.mask
		child := node.children[subidx]
		switch {
		case forked: // below the fork: just walk down to the leaf being promoted
			node = child
		case (forkPoint >> level) != 0: // fork level: unlink the leaf's subtree
			forked = true
			node.children[subidx] = nil
			node = child
		default: // shared prefix of both paths: copy
			child = child.clone()
			node.children[subidx] = child
			node = child
		}
	}
	return Vector[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
}

// Each enumerates the elements of a vector in index order, stopping early as
// soon as f returns false. Enumeration always starts over at index 0,
// reflecting the exact incarnation of the vector it is called on.
func (v Vector[T]) Each(f func(T) bool) {
	if v.root != nil && !v.root.each(f) {
		return
	}
	for _, x := range v.tail {
		if !f(x) {
			return
		}
	}
}

// Slice enumerates a vector into a freshly allocated slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(x T) bool {
		s = append(s, x)
		return true
	})
	return s
}

// --- Size and shift bookkeeping ----------------------------------------------

// tailOffset returns the number of elements held by the trie, i.e. the index
// of the first tail element. Callers guarantee length > 0.
func (v Vector[T]) tailOffset() uint32 {
	return (v.length - 1) &^ v.mask
}

func (v Vector[T]) tailFull() bool {
	return len(v.tail) >= int(v.degree)
}
