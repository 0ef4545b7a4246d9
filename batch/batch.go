// Package batch stages keyed values before they become a queue, so callers
// can collect (key, value) pairs in any order, overwrite earlier stagings,
// and emit the final set in one pass.
package batch

import (
	"cmp"

	"github.com/davidvella/ipq"
	"github.com/google/btree"
)

type staged[T any] struct {
	key   int
	value T
}

// Builder accumulates keyed values with last-write-wins semantics. The zero
// Builder is not usable; call NewBuilder.
type Builder[T cmp.Ordered] struct {
	entries *btree.BTreeG[staged[T]]
}

// NewBuilder returns an empty builder.
func NewBuilder[T cmp.Ordered]() *Builder[T] {
	return &Builder[T]{
		entries: btree.NewG[staged[T]](2, func(a, b staged[T]) bool {
			return a.key < b.key
		}),
	}
}

// Set stages value at key, replacing any earlier staging of the same key.
// It fails with ipq.ErrRange when the key is negative.
func (b *Builder[T]) Set(key int, value T) error {
	if key < 0 {
		return ipq.ErrRange
	}
	b.entries.ReplaceOrInsert(staged[T]{key: key, value: value})
	return nil
}

// Unset withdraws the staging at key and reports whether one existed.
func (b *Builder[T]) Unset(key int) bool {
	_, ok := b.entries.Delete(staged[T]{key: key})
	return ok
}

// Len returns the number of staged keys.
func (b *Builder[T]) Len() int {
	return b.entries.Len()
}

// Keys returns the staged keys in ascending order.
func (b *Builder[T]) Keys() []int {
	keys := make([]int, 0, b.entries.Len())
	b.entries.Ascend(func(s staged[T]) bool {
		keys = append(keys, s.key)
		return true
	})
	return keys
}

// Build emits the staged entries into a fresh queue ordered by dir. The
// builder keeps its entries and can build again.
func (b *Builder[T]) Build(dir ipq.Direction) *ipq.Queue[T] {
	q := ipq.New[T](dir, nil)
	// Staged keys are unique and non-negative, so emission into an empty
	// queue cannot fail.
	_ = b.AppendTo(q)
	return q
}

// AppendTo emits the staged entries into q in ascending key order. It stops
// at the first insert failure, typically ipq.ErrDuplicateKey when q already
// holds one of the staged keys; entries emitted before the failure stay in
// the queue.
func (b *Builder[T]) AppendTo(q *ipq.Queue[T]) error {
	var insertErr error
	b.entries.Ascend(func(s staged[T]) bool {
		if err := q.Insert(s.key, s.value); err != nil {
			insertErr = err
			return false
		}
		return true
	})
	return insertErr
}
