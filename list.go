package binder

type element[K comparable, V any] struct {
	next, prev *element[K, V]
	key        K
	value      V
}

type list[K comparable, V any] struct {
	root element[K, V]
}

func (l *list[K, V]) front() *element[K, V] {
	return l.root.next
}

func (l *list[K, V]) remove(e *element[K, V]) {
	if e.prev == nil {
		l.root.next = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.root.prev = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
}

func (l *list[K, V]) pushFront(key K, value V) *element[K, V] {
	e := &element[K, V]{key: key, value: value}
	if l.root.next == nil {
		l.root.next = e
		l.root.prev = e
		return e
	}

	e.next = l.root.next
	l.root.next.prev = e
	l.root.next = e
	return e
}

func (l *list[K, V]) pushBack(key K, value V) *element[K, V] {
	e := &element[K, V]{key: key, value: value}
	if l.root.prev == nil {
		l.root.next = e
		l.root.prev = e
		return e
	}

	e.prev = l.root.prev
	l.root.prev.next = e
	l.root.prev = e
	return e
}

// insertAfter links a new element immediately following at, which must
// already belong to this list.
func (l *list[K, V]) insertAfter(at *element[K, V], key K, value V) *element[K, V] {
	if at.next == nil {
		return l.pushBack(key, value)
	}
	e := &element[K, V]{key: key, value: value, prev: at, next: at.next}
	at.next.prev = e
	at.next = e
	return e
}
