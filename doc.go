// Package ipq implements an indexed priority queue: a binary heap in which
// every element is addressed by a stable integer key, independent of the
// position the element currently occupies inside the heap. Plain heaps only
// expose their head element; the index makes it possible to decrease,
// increase, update or delete any element by key in O(log n), which is the
// operation shortest-path searches, event simulators and schedulers actually
// need.
//
// The queue keeps three cooperating pieces: a backing store of values
// indexed by key, a position map from key to heap node, and the inverse map
// from heap node back to key. The two maps move in lockstep while the heap
// engine swims and sinks nodes, so callers can keep referring to an element
// by the key they chose at insertion no matter where the heap has moved it.
//
// Key features:
//   - Generic over any ordered value type; the values are the priorities
//   - Min or Max ordering chosen at construction
//   - O(log n) insert, delete, decrease, increase and update by key
//   - O(1) peek of the head key or value
//   - O(n) construction from an existing unordered slice
//   - Amortized O(1) capacity growth by power-of-two doubling
//
// Basic usage:
//
//	// Build a min-queue from an existing slice; element i gets key i.
//	q := ipq.New(ipq.Min, []int{9, 8, 7, 6, 5})
//
//	// Reprioritize by key.
//	_ = q.Decrease(3, 0)
//
//	// Consume in priority order.
//	for !q.IsEmpty() {
//	    key, _ := q.PollKey()
//	    fmt.Println(key)
//	}
//
// Every operation that can be handed an invalid key reports it with a typed
// error (ErrUnknownKey, ErrDuplicateKey, ErrUnderflow, ErrRange) before any
// state changes; no operation panics on caller input.
//
// The queue is a single-threaded structure. It holds exclusive access to its
// backing store from New until Unwrap, and callers that share a queue across
// goroutines must serialize access themselves.
package ipq
