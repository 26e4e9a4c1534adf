package memory

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

var (
	// ErrDuplicateID is returned when a generated id is already stored.
	ErrDuplicateID = errors.New("id already in use")

	errConflict = errors.New("record conflicts with an existing one")
)

type entry[T any] struct {
	seq   uint64 // insertion position, breaks ties when sorting
	value T
}

// collection is a keyed set of records guarded by its own RWMutex. Values
// pass through clone on the way in and out so callers never share memory
// with stored records.
type collection[T any] struct {
	mu    sync.RWMutex
	seq   uint64
	items map[string]entry[T]
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{items: make(map[string]entry[T]), clone: clone}
}

// insert stores v under id. It fails with ErrDuplicateID when id is taken
// and with errConflict when conflict matches an existing record.
func (c *collection[T]) insert(id string, v T, conflict func(existing T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return ErrDuplicateID
	}
	if conflict != nil {
		for _, e := range c.items {
			if conflict(e.value) {
				return errConflict
			}
		}
	}
	c.seq++
	c.items[id] = entry[T]{seq: c.seq, value: c.clone(v)}
	return nil
}

// get returns a copy of the record or nil when id is absent.
func (c *collection[T]) get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[id]
	if !ok {
		return nil
	}
	v := c.clone(e.value)
	return &v
}

// find returns the earliest inserted record matching pred.
func (c *collection[T]) find(pred func(T) bool) *T {
	for _, v := range c.list(nil) {
		if pred(v) {
			return &v
		}
	}
	return nil
}

// update applies fn to a copy of the record and stores the result. The
// record keeps its insertion position.
func (c *collection[T]) update(id string, fn func(*T)) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[id]
	if !ok {
		return nil
	}
	v := c.clone(e.value)
	fn(&v)
	e.value = c.clone(v)
	c.items[id] = e
	return &v
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// list returns a snapshot of all records sorted by order. Records comparing
// equal, or all records when order is nil, keep insertion order.
func (c *collection[T]) list(order func(a, b T) int) []T {
	c.mu.RLock()
	entries := make([]entry[T], 0, len(c.items))
	for _, e := range c.items {
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	slices.SortFunc(entries, func(a, b entry[T]) int {
		if order != nil {
			if r := order(a.value, b.value); r != 0 {
				return r
			}
		}
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = c.clone(e.value)
	}
	return out
}
