package binder

// Iterator is a forward, read-only traversal over a binder's values in entry
// order. It pins the identity of the node it was started on: two iterators
// are equal only if they traverse the same node instance and sit at the same
// position, so iterators taken before and after a copy-on-write clone never
// compare equal even when the visible contents match. The zero Iterator is
// the position of an empty binder.
//
// Obtaining or advancing an iterator never clones the node and never marks a
// mutable reference as outstanding. Mutating the binder mid-traversal leaves
// the iterator on whatever node image it started on.
type Iterator[K comparable, V any] struct {
	n *node[K, V]
	e *element[K, V]
}

// Begin returns an iterator at the binder's first entry, or End() when the
// binder is empty.
func (b *Binder[K, V]) Begin() Iterator[K, V] {
	if b.data == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{n: b.data, e: b.data.ll.front()}
}

// End returns the past-the-end iterator for the binder's current node.
func (b *Binder[K, V]) End() Iterator[K, V] {
	if b.data == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{n: b.data}
}

// Valid reports whether the iterator points at an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.e != nil
}

// Next returns the iterator advanced by one entry. Advancing past the end is
// a no-op.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.e == nil {
		return it
	}
	return Iterator[K, V]{n: it.n, e: it.e.next}
}

// Key returns the key at the iterator's position. The iterator must be
// valid.
func (it Iterator[K, V]) Key() K {
	return it.e.key
}

// Value returns a copy of the value at the iterator's position. The iterator
// must be valid.
func (it Iterator[K, V]) Value() V {
	return it.e.value
}

// Equal reports whether both iterators traverse the same node instance and
// point at the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.n == other.n && it.e == other.e
}
