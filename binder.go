package binder

import (
	"errors"
)

var (
	ErrEmptyBinder      = errors.New("binder is empty")
	ErrDuplicateKey     = errors.New("binder already contains entry with given key")
	ErrMissingKey       = errors.New("entry doesn't exist in binder")
	ErrCapacityExceeded = errors.New("binder entry limit exceeded")
)

// Binder is an ordered associative container with value semantics: Copy and
// Assign produce logically independent containers while sharing the payload
// node until a mutation could make the copies diverge. Entry order is the
// order established by InsertFront and InsertAfter, not key order.
//
// A Binder is not safe for concurrent use; the copy-on-write bookkeeping
// assumes a single goroutine or external synchronization, including across
// handles that share a node.
type Binder[K comparable, V any] struct {
	// data == nil indicates an empty binder
	data *node[K, V]

	// mutableRef records that ReadMut handed out a pointer into data and no
	// mutation or assignment has invalidated it since
	mutableRef bool

	limit int
}

// New returns an empty binder. An optional positive maxEntries bounds how
// many entries the binder may hold; inserts beyond it fail with
// ErrCapacityExceeded.
func New[K comparable, V any](maxEntries ...int) *Binder[K, V] {
	limit := -1
	if len(maxEntries) > 0 && maxEntries[0] > 0 {
		limit = maxEntries[0]
	}
	return &Binder[K, V]{limit: limit}
}

// detach returns the node this handle may operate on: a fresh node when
// empty, the current node when exclusively owned, or a private deep clone
// when shared. It does not adjust reference counts; the caller adopts the
// returned node only once the operation on it has succeeded.
func (b *Binder[K, V]) detach() *node[K, V] {
	switch {
	case b.data == nil:
		return newNode[K, V](b.limit)
	case b.data.refs == 1:
		return b.data
	default:
		return b.data.clone()
	}
}

// commit installs n as the handle's node after a successful mutation,
// releasing the node entirely if the mutation emptied it. Any previously
// handed-out mutable reference no longer influences future copies.
func (b *Binder[K, V]) commit(n *node[K, V]) {
	b.mutableRef = false
	switch {
	case n.size() == 0:
		b.release()
	case n != b.data:
		b.release()
		b.data = n
	}
}

func (b *Binder[K, V]) release() {
	if b.data != nil {
		b.data.refs--
		b.data = nil
	}
}

// InsertFront prepends a new entry. It fails with ErrDuplicateKey if the key
// is already present, leaving the binder unchanged.
func (b *Binder[K, V]) InsertFront(key K, value V) error {
	n := b.detach()
	if err := n.insertFront(key, value); err != nil {
		return err
	}
	b.commit(n)
	return nil
}

// InsertAfter inserts a new entry immediately following prevKey's entry. It
// fails with ErrEmptyBinder on an empty binder, ErrDuplicateKey if key is
// already present, and ErrMissingKey if prevKey is absent; on failure the
// binder is unchanged.
func (b *Binder[K, V]) InsertAfter(prevKey, key K, value V) error {
	if b.data == nil {
		return ErrEmptyBinder
	}
	n := b.detach()
	if err := n.insertAfter(prevKey, key, value); err != nil {
		return err
	}
	b.commit(n)
	return nil
}

// RemoveFront removes the first entry. It fails with ErrEmptyBinder on an
// empty binder.
func (b *Binder[K, V]) RemoveFront() error {
	if b.data == nil {
		return ErrEmptyBinder
	}
	n := b.detach()
	if err := n.removeFront(); err != nil {
		return err
	}
	b.commit(n)
	return nil
}

// Remove removes the entry stored under key. It fails with ErrEmptyBinder on
// an empty binder and ErrMissingKey if the key is absent.
func (b *Binder[K, V]) Remove(key K) error {
	if b.data == nil {
		return ErrEmptyBinder
	}
	n := b.detach()
	if err := n.remove(key); err != nil {
		return err
	}
	b.commit(n)
	return nil
}

// Read returns a copy of the value stored under key. It never clones the
// node and never disturbs sharing.
func (b *Binder[K, V]) Read(key K) (V, error) {
	if b.data == nil {
		var zero V
		return zero, ErrEmptyBinder
	}
	return b.data.read(key)
}

// ReadMut returns a pointer to the value stored under key, cloning the node
// first if it is shared so that writes through the pointer cannot reach
// other handles. Until the next mutation, Assign, or Clear on this handle,
// Copy will deep-clone eagerly to keep the escaped pointer from aliasing the
// new copy.
func (b *Binder[K, V]) ReadMut(key K) (*V, error) {
	if b.data == nil {
		return nil, ErrEmptyBinder
	}
	n := b.detach()
	p, err := n.readMut(key)
	if err != nil {
		return nil, err
	}
	if n != b.data {
		b.release()
		b.data = n
	}
	b.mutableRef = true
	return p, nil
}

// Copy returns a logical copy of the binder. The payload is shared and
// reference-counted unless a mutable reference from ReadMut is outstanding,
// in which case the copy deep-clones up front.
func (b *Binder[K, V]) Copy() *Binder[K, V] {
	c := &Binder[K, V]{limit: b.limit}
	if b.data == nil {
		return c
	}
	if b.mutableRef {
		c.data = b.data.clone()
	} else {
		b.data.refs++
		c.data = b.data
	}
	return c
}

// Assign replaces the binder's contents with a logical copy of src,
// following the same sharing rule as Copy: a source with an outstanding
// mutable reference is deep-cloned, severing the escaped pointer from the
// adopted node. This holds for self-assignment too. The handle's own
// outstanding mutable reference, if any, is forgotten.
func (b *Binder[K, V]) Assign(src *Binder[K, V]) {
	var n *node[K, V]
	if src.data != nil {
		if src.mutableRef {
			n = src.data.clone()
		} else {
			src.data.refs++
			n = src.data
		}
	}
	b.release()
	b.data = n
	b.limit = src.limit
	b.mutableRef = false
}

// Clear empties the binder, releasing its share of the node.
func (b *Binder[K, V]) Clear() {
	b.release()
	b.mutableRef = false
}

// Len returns the number of entries. It never clones and never fails.
func (b *Binder[K, V]) Len() int {
	if b.data == nil {
		return 0
	}
	return b.data.size()
}

// Contains reports whether key is present.
func (b *Binder[K, V]) Contains(key K) bool {
	if b.data == nil {
		return false
	}
	_, exists := b.data.kv[key]
	return exists
}

// Keys returns the keys in entry order.
func (b *Binder[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, b.Len())
	if b.data == nil {
		return keys
	}
	for e := b.data.ll.front(); e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the values in entry order.
func (b *Binder[K, V]) Values() (values []V) {
	values = make([]V, 0, b.Len())
	if b.data == nil {
		return values
	}
	for e := b.data.ll.front(); e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Range calls f for each entry in order. If f returns false, Range stops the
// iteration. Like Read, it never clones and never disturbs sharing.
func (b *Binder[K, V]) Range(f func(key K, value V) bool) {
	if b.data == nil {
		return
	}
	for e := b.data.ll.front(); e != nil; e = e.next {
		if !f(e.key, e.value) {
			break
		}
	}
}
