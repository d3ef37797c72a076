package trie

import "iter"

// Trie is a priority-ranked prefix index over byte-string keys. See the
// package documentation for the matching semantics and the intended
// build-then-publish usage.
//
// A Trie must not be copied after first use: entries reference its owned
// value collection, and a copy would alias node ownership between two
// instances.
type Trie[T any] struct {
	noCopy noCopy

	// root represents the empty key. It always exists and is recycled in
	// place by Clear, never reallocated.
	root node[T]

	// values owns every inserted value, in insertion order. Nodes hold
	// non-owning pointers into it.
	values []*T

	tracer Tracer
}

// New returns an empty Trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// SetTracer sets the Tracer that receives diagnostic output from Insert
// and Search. A nil Tracer disables tracing. Not safe to call concurrently
// with other operations.
func (t *Trie[T]) SetTracer(tr Tracer) {
	t.tracer = tr
}

// Insert registers value under key with the given rank (lower rank means
// higher priority) and reports whether the entry was added. A nil or
// empty key registers the root entry, which matches every search.
//
// If the exact key is already registered, Insert returns false and leaves
// the existing entry untouched. On success the Trie takes ownership of
// value, which must not be nil: Insert panics on a nil value, since a
// registered key with no value is not representable.
//
// Node allocation has no failure path; memory exhaustion is fatal, as it
// is for any Go allocation.
func (t *Trie[T]) Insert(key []byte, value *T, rank int) bool {
	if value == nil {
		panic("trie: Insert with nil value")
	}

	curr := &t.root
	i := 0

	// Walk existing nodes as far as the key allows, then switch to
	// allocating the remainder of the path.
	for i < len(key) {
		next := curr.child(key[i])
		if next == nil {
			for i < len(key) {
				t.trace("insert: creating child for byte %q (%d)", key[i], key[i])
				curr = curr.allocateChild(key[i])
				i++
			}

			break
		}

		curr = next
		i++
	}

	if curr.occupied {
		t.trace("insert: rejecting duplicate key %q", key)
		return false
	}

	curr.occupied = true
	curr.value = value
	curr.rank = rank
	t.values = append(t.values, value)

	t.trace("insert: registered key %q with rank %d", key, rank)

	return true
}

// Search resolves key against the registered entries and returns the
// winning value. Every registered prefix of key is a candidate, including
// the root entry; the candidate with the lowest rank wins, and among equal
// ranks the longest prefix wins. The second return value reports whether
// any entry matched.
//
// Search never mutates the Trie.
func (t *Trie[T]) Search(key []byte) (*T, bool) {
	var found *node[T]

	curr := &t.root
	i := 0

	for curr != nil {
		if curr.occupied {
			// A later hit is a deeper, more specific prefix, so <= lets
			// equal-rank specificity win while a strictly lower rank at
			// any depth always wins.
			if found == nil || curr.rank <= found.rank {
				found = curr
				t.trace("search: best match now at depth %d, rank %d", i, curr.rank)
			}
		}

		if i == len(key) {
			break
		}

		curr = curr.child(key[i])
		i++
	}

	if found == nil {
		t.trace("search: no match for key %q", key)
		return nil, false
	}

	return found.value, true
}

// Clear removes every entry, returning the Trie to the freshly
// constructed state: the owned values are dropped in insertion order, all
// nodes below the root are detached, and the root is reset in place.
func (t *Trie[T]) Clear() {
	for i := range t.values {
		t.values[i] = nil
	}
	t.values = nil

	// Detach the subtree with an explicit work list so teardown depth
	// never tracks key length on the native stack.
	var stack []*node[T]

	for i := range t.root.children {
		if child := t.root.children[i]; child != nil {
			stack = append(stack, child)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range n.children {
			if child := n.children[i]; child != nil {
				stack = append(stack, child)
			}
		}

		n.reset()
	}

	t.root.reset()
}

// Empty reports whether the Trie holds no entries.
func (t *Trie[T]) Empty() bool {
	return len(t.values) == 0
}

// Len returns the number of entries.
func (t *Trie[T]) Len() int {
	return len(t.values)
}

// Values iterates over the owned values in insertion order, not key
// order. The sequence reflects the value collection only; it does not
// walk the node tree.
func (t *Trie[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range t.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Dump writes the node tree and the value count to tr for debugging. It
// never mutates the Trie. A nil Tracer is a no-op.
func (t *Trie[T]) Dump(tr Tracer) {
	if tr == nil {
		return
	}

	tr.Trace("trie with %d values", len(t.values))

	type frame struct {
		n   *node[T]
		key []byte
	}

	stack := []frame{{n: &t.root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tr.Trace("key %q:", f.key)
		f.n.dump(tr)

		for i := range f.n.children {
			if child := f.n.children[i]; child != nil {
				key := append(append([]byte(nil), f.key...), byte(i))
				stack = append(stack, frame{n: child, key: key})
			}
		}
	}
}

func (t *Trie[T]) trace(format string, args ...any) {
	if t.tracer != nil {
		t.tracer.Trace(format, args...)
	}
}

// noCopy triggers go vet's copylocks check when a Trie is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
