package binder

// node is the shared payload behind one or more Binder handles: the ordered
// entry list plus an index from key to list element. refs counts the handles
// currently sharing it; a node with refs == 1 may be mutated in place.
type node[K comparable, V any] struct {
	kv    map[K]*element[K, V]
	ll    list[K, V]
	refs  int
	limit int
}

func newNode[K comparable, V any](limit int) *node[K, V] {
	return &node[K, V]{
		kv:    make(map[K]*element[K, V]),
		refs:  1,
		limit: limit,
	}
}

// clone deep-copies the node. The index is rebuilt from the fresh elements
// rather than copied, since the old index points into the old list.
func (n *node[K, V]) clone() *node[K, V] {
	c := &node[K, V]{
		kv:    make(map[K]*element[K, V], len(n.kv)),
		refs:  1,
		limit: n.limit,
	}
	for e := n.ll.front(); e != nil; e = e.next {
		c.kv[e.key] = c.ll.pushBack(e.key, e.value)
	}
	return c
}

// indexAdd is the failure-prone half of an insert: it enforces the entry
// limit and registers the element under its key. Callers have already linked
// e into the list and must unlink it if indexAdd fails.
func (n *node[K, V]) indexAdd(key K, e *element[K, V]) error {
	if n.limit > 0 && len(n.kv)+1 > n.limit {
		return ErrCapacityExceeded
	}
	n.kv[key] = e
	return nil
}

func (n *node[K, V]) insertFront(key K, value V) error {
	if _, exists := n.kv[key]; exists {
		return ErrDuplicateKey
	}
	e := n.ll.pushFront(key, value)
	if err := n.indexAdd(key, e); err != nil {
		n.ll.remove(e)
		return err
	}
	return nil
}

func (n *node[K, V]) insertAfter(prevKey, key K, value V) error {
	if _, exists := n.kv[key]; exists {
		return ErrDuplicateKey
	}
	prev, exists := n.kv[prevKey]
	if !exists {
		return ErrMissingKey
	}
	e := n.ll.insertAfter(prev, key, value)
	if err := n.indexAdd(key, e); err != nil {
		n.ll.remove(e)
		return err
	}
	return nil
}

func (n *node[K, V]) removeFront() error {
	e := n.ll.front()
	if e == nil {
		return ErrEmptyBinder
	}
	delete(n.kv, e.key)
	n.ll.remove(e)
	return nil
}

func (n *node[K, V]) remove(key K) error {
	e, exists := n.kv[key]
	if !exists {
		return ErrMissingKey
	}
	delete(n.kv, key)
	n.ll.remove(e)
	return nil
}

func (n *node[K, V]) read(key K) (V, error) {
	e, exists := n.kv[key]
	if !exists {
		var zero V
		return zero, ErrMissingKey
	}
	return e.value, nil
}

func (n *node[K, V]) readMut(key K) (*V, error) {
	e, exists := n.kv[key]
	if !exists {
		return nil, ErrMissingKey
	}
	return &e.value, nil
}

func (n *node[K, V]) size() int {
	return len(n.kv)
}
