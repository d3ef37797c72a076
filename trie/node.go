package trie

// numChildren is the per-node fan-out: one slot per possible byte value.
const numChildren = 256

// node is one byte position in the key space. Every node except the root
// is reachable from the root by exactly one byte sequence, which is the
// key it represents. Nodes are created lazily, only on the path of some
// inserted key.
type node[T any] struct {
	children [numChildren]*node[T]

	// value points into the collection owned by the Trie. Non-nil iff
	// occupied; the node itself never owns it.
	value    *T
	occupied bool
	rank     int
}

func (n *node[T]) child(b byte) *node[T] {
	return n.children[b]
}

// allocateChild installs a fresh empty node in the slot for b and returns
// it. The slot must be empty: a taken slot means the insert walk skipped a
// lookup, which is a bug in this package, not a caller error.
func (n *node[T]) allocateChild(b byte) *node[T] {
	if n.children[b] != nil {
		panic("trie: child slot already allocated")
	}

	child := &node[T]{}
	n.children[b] = child

	return child
}

// reset returns the node to the empty state: no value, not occupied, rank
// zero, all child slots empty. Used at construction and when recycling the
// root on Clear.
func (n *node[T]) reset() {
	n.value = nil
	n.occupied = false
	n.rank = 0
	clear(n.children[:])
}

// dump writes the node's state to tr.
func (n *node[T]) dump(tr Tracer) {
	if n.occupied {
		tr.Trace("node occupied, rank %d", n.rank)
	} else {
		tr.Trace("node not occupied")
	}

	for i := range n.children {
		if n.children[i] != nil {
			tr.Trace("node has child for byte %q (%d)", byte(i), i)
		}
	}
}
