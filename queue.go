package ipq

import (
	"cmp"
	"fmt"
	"iter"
)

// Direction selects which end of the ordering a queue serves first.
type Direction int

const (
	// Min orders the smallest value to the head of the queue.
	Min Direction = iota
	// Max orders the largest value to the head of the queue.
	Max
)

// String returns "min" or "max".
func (d Direction) String() string {
	if d == Max {
		return "max"
	}
	return "min"
}

// Queue is an indexed priority queue: a binary heap whose elements are
// addressed by caller-assigned integer keys. A key stays attached to its
// element no matter how the heap rearranges node positions, which is what
// makes Decrease, Increase, Update and Delete by key O(log n) instead of a
// search.
//
// The queue is not safe for concurrent use.
type Queue[T cmp.Ordered] struct {
	values []T // backing store, indexed by key
	maps   mapping
	size   int
	dir    Direction
}

// New builds a queue over values, taking ownership of the slice; the caller
// must not keep using it. Element i is assigned key i. The values are
// heap-ordered in place through the queue's maps in O(n). Unwrap hands the
// remaining values back when the queue is done.
func New[T cmp.Ordered](dir Direction, values []T) *Queue[T] {
	n := len(values)
	c := nextPowerOfTwo(n)
	q := &Queue[T]{
		values: append(values, make([]T, c-n)...),
		maps:   newMapping(c),
		size:   n,
		dir:    dir,
	}
	for i := 0; i < n; i++ {
		q.maps.place(i, i)
	}
	q.heapify()
	return q
}

// Len returns the number of elements held.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Cap returns the allocated key capacity. It is always a power of two and
// grows by doubling, so a run of inserts reallocates O(log n) times.
func (q *Queue[T]) Cap() int {
	return q.maps.capacity()
}

// Contains reports whether key currently holds an element. Keys outside the
// allocated capacity are simply absent, never an error.
func (q *Queue[T]) Contains(key int) bool {
	_, ok := q.maps.resolve(key)
	return ok
}

// ValueOf returns the value stored at key, or ErrUnknownKey.
func (q *Queue[T]) ValueOf(key int) (T, error) {
	if _, ok := q.maps.resolve(key); !ok {
		var zero T
		return zero, ErrUnknownKey
	}
	return q.values[key], nil
}

// Insert places value at key. It fails with ErrDuplicateKey when the key is
// occupied and ErrRange when the key is negative. Capacity grows as needed,
// so keys do not have to be contiguous.
func (q *Queue[T]) Insert(key int, value T) error {
	if key < 0 {
		return ErrRange
	}
	if q.Contains(key) {
		return ErrDuplicateKey
	}
	q.insert(key, value)
	return nil
}

// Push places value at an automatically chosen free key and returns that
// key: the key equal to Len() when it is free, which it always is while keys
// are dense, otherwise the lowest free key. The chosen key never exceeds
// Len(), so pushing cannot sparsen the key space further.
func (q *Queue[T]) Push(value T) int {
	key := q.size
	if key < q.maps.capacity() && q.maps.pm[key].ok {
		// size elements cannot occupy all of the size+1 keys 0..size, so
		// this scan terminates on a free key below size.
		key = 0
		for q.maps.pm[key].ok {
			key++
		}
	}
	q.insert(key, value)
	return key
}

// insert places value at a key the caller has verified to be free, growing
// capacity, assigning the next free node position and swimming it.
func (q *Queue[T]) insert(key int, value T) {
	need := q.size + 1
	if key+1 > need {
		need = key + 1
	}
	q.grow(need)
	q.values[key] = value
	q.maps.place(key, q.size)
	q.size++
	q.swim(q.size - 1)
}

// Append bulk-inserts values at consecutive keys starting one past the
// highest occupied key, or at key 0 on an empty queue. Capacity grows at
// most once for the whole batch, then the appended tail is re-heapified.
func (q *Queue[T]) Append(values []T) {
	if len(values) == 0 {
		return
	}
	start := q.highestKey() + 1
	q.grow(start + len(values))
	first := q.size
	for i, v := range values {
		q.values[start+i] = v
		q.maps.place(start+i, q.size)
		q.size++
	}
	for node := first; node < q.size; node++ {
		q.swim(node)
	}
}

// Delete removes the element at key and returns its value, or
// ErrUnknownKey. The vacated node position is filled by the occupant of the
// last occupied node, which then sinks and swims to wherever heap order puts
// it. Every other key keeps its element.
func (q *Queue[T]) Delete(key int) (T, error) {
	node, ok := q.maps.resolve(key)
	if !ok {
		var zero T
		return zero, ErrUnknownKey
	}
	return q.remove(key, node), nil
}

// remove unlinks the element the caller resolved to (key, node) and returns
// its value.
func (q *Queue[T]) remove(key, node int) T {
	value := q.values[key]
	var zero T
	q.values[key] = zero

	last := q.size - 1
	moved := node != last
	if moved {
		q.maps.swapNodes(node, last)
	}
	q.maps.remove(key, last)
	q.size--
	if moved {
		q.sink(node)
		q.swim(node)
	}
	return value
}

// Decrease replaces key's value when the new value is strictly smaller and
// restores heap order; a larger or equal value leaves the queue untouched.
// It fails with ErrUnknownKey when key is absent.
func (q *Queue[T]) Decrease(key int, value T) error {
	node, ok := q.maps.resolve(key)
	if !ok {
		return ErrUnknownKey
	}
	if !cmp.Less(value, q.values[key]) {
		return nil
	}
	q.values[key] = value
	if q.dir == Min {
		q.swim(node)
	} else {
		q.sink(node)
	}
	return nil
}

// Increase replaces key's value when the new value is strictly larger and
// restores heap order; a smaller or equal value leaves the queue untouched.
// It fails with ErrUnknownKey when key is absent.
func (q *Queue[T]) Increase(key int, value T) error {
	node, ok := q.maps.resolve(key)
	if !ok {
		return ErrUnknownKey
	}
	if !cmp.Less(q.values[key], value) {
		return nil
	}
	q.values[key] = value
	if q.dir == Min {
		q.sink(node)
	} else {
		q.swim(node)
	}
	return nil
}

// Update replaces key's value unconditionally, restores heap order in
// whichever direction the change requires, and returns the previous value.
// It fails with ErrUnknownKey when key is absent.
func (q *Queue[T]) Update(key int, value T) (T, error) {
	node, ok := q.maps.resolve(key)
	if !ok {
		var zero T
		return zero, ErrUnknownKey
	}
	prev := q.values[key]
	q.values[key] = value
	q.sink(node)
	q.swim(node)
	return prev, nil
}

// PeekKey returns the key at the head of the queue without removing it, or
// ErrUnderflow on an empty queue.
func (q *Queue[T]) PeekKey() (int, error) {
	key, ok := q.maps.keyAt(0)
	if !ok {
		return 0, ErrUnderflow
	}
	return key, nil
}

// PeekValue returns the value at the head of the queue without removing it,
// or ErrUnderflow on an empty queue.
func (q *Queue[T]) PeekValue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return q.valueAt(0), nil
}

// PollKey removes the element at the head of the queue and returns its key,
// or ErrUnderflow on an empty queue.
func (q *Queue[T]) PollKey() (int, error) {
	key, ok := q.maps.keyAt(0)
	if !ok {
		return 0, ErrUnderflow
	}
	q.remove(key, 0)
	return key, nil
}

// PollValue removes the element at the head of the queue and returns its
// value, or ErrUnderflow on an empty queue.
func (q *Queue[T]) PollValue() (T, error) {
	key, ok := q.maps.keyAt(0)
	if !ok {
		var zero T
		return zero, ErrUnderflow
	}
	return q.remove(key, 0), nil
}

// Drain removes the inclusive key range [start, end] and returns the removed
// values in key order. The remaining elements are compacted: they keep their
// relative key order but are re-keyed to 0..Len()-1, then re-heapified.
// Capacity is retained. It fails with ErrRange when start > end or the range
// reaches outside the occupied keys.
func (q *Queue[T]) Drain(start, end int) ([]T, error) {
	if start < 0 || start > end || end > q.highestKey() {
		return nil, ErrRange
	}
	removed := make([]T, 0, end-start+1)
	kept := make([]T, 0, q.size)
	for key := 0; key < q.maps.capacity(); key++ {
		if !q.maps.pm[key].ok {
			continue
		}
		if key >= start && key <= end {
			removed = append(removed, q.values[key])
		} else {
			kept = append(kept, q.values[key])
		}
	}
	q.maps.reset()
	clear(q.values)
	copy(q.values, kept)
	q.size = len(kept)
	for i := 0; i < q.size; i++ {
		q.maps.place(i, i)
	}
	q.heapify()
	return removed, nil
}

// All returns an iterator over the queue's elements in ascending key order.
// Key order is not priority order; poll for that. The queue must not be
// mutated while iterating.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for key := 0; key < q.maps.capacity(); key++ {
			if q.maps.pm[key].ok && !yield(key, q.values[key]) {
				return
			}
		}
	}
}

// Unwrap compacts the remaining values into key order, hands back the
// backing slice, and leaves the queue empty with its capacity retained. It
// is the counterpart of New taking the slice in.
func (q *Queue[T]) Unwrap() []T {
	n := 0
	for key := 0; key < q.maps.capacity(); key++ {
		if q.maps.pm[key].ok {
			q.values[n] = q.values[key]
			n++
		}
	}
	out := q.values[:n:n]
	q.values = make([]T, q.maps.capacity())
	q.maps.reset()
	q.size = 0
	return out
}

// String describes the queue's direction and shape.
func (q *Queue[T]) String() string {
	name := "Minimum"
	if q.dir == Max {
		name = "Maximum"
	}
	branches := q.size - 1
	if branches < 0 {
		branches = 0
	}
	return fmt.Sprintf("%s Priority Queue of %d elements and %d branches", name, q.size, branches)
}

// grow extends the backing store and both maps to cover need slots, doubling
// to the next power of two. It is the queue's only allocation point.
func (q *Queue[T]) grow(need int) {
	if need <= q.maps.capacity() {
		return
	}
	q.maps.grow(need)
	q.values = append(q.values, make([]T, q.maps.capacity()-len(q.values))...)
}

// highestKey returns the largest occupied key, or -1 on an empty queue.
func (q *Queue[T]) highestKey() int {
	for key := q.maps.capacity() - 1; key >= 0; key-- {
		if q.maps.pm[key].ok {
			return key
		}
	}
	return -1
}
