package vector

import (
	"fmt"
	"strings"
)

const (
	defaultBits   uint32 = 5 // will produce nodes with degree 2 ^ 5 = 32
	defaultDegree uint32 = 1 << defaultBits
	defaultMask   uint32 = defaultDegree - 1
)

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  uint32 // we do not store h(v), but rather bits*(h(v)-1)
}

// init fills in the default degree for zero-value vectors.
func (p props) init() props {
	if p.degree == 0 {
		p.bits = defaultBits
		p.degree = defaultDegree
		p.mask = defaultMask
	}
	return p
}

func (p props) withShift(shift uint32) props {
	p.shift = shift
	return p
}

// vnode represents a node in the trie a vector is made of. Inner nodes own a
// fixed-size slice of children, leaf nodes own a bucket of elements.
// A vnode is never mutated after it has been linked into a published vector.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

// newLeaf copies tail into a fresh leaf node.
func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leafs: l}
}

// clone copies a node one level deep: slot contents are copied verbatim
// (same references), so all subtrees stay shared with the original.
func (node vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

// newPath wraps tail, as a new leaf, into a chain of inner nodes reaching down
// from the given level. Each inner node has the new chain link as its single
// (leftmost) child.
func newPath[T any](levels, bits, k uint32, tail []T) *vnode[T] {
	topNode := newLeaf(tail)
	for level := levels; level > 0; level -= bits {
		newTop := emptyNode[T](k)
		newTop.children[0] = topNode
		topNode = newTop
	}
	return topNode
}

// each walks the subtree in index order, calling f for every element.
// Returns false iff f aborted the walk. Children of inner nodes are always
// filled left to right, so the walk stops at the first nil child.
func (node *vnode[T]) each(f func(T) bool) bool {
	if node.leafs != nil {
		for _, x := range node.leafs {
			if !f(x) {
				return false
			}
		}
		return true
	}
	for _, ch := range node.children {
		if ch == nil {
			return true
		}
		if !ch.each(f) {
			return false
		}
	}
	return true
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
