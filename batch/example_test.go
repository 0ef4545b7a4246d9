package batch_test

import (
	"fmt"

	"github.com/davidvella/ipq"
	"github.com/davidvella/ipq/batch"
)

// ExampleBuilder demonstrates staging priorities out of key order,
// overwriting one, and emitting the result as a ready queue.
func ExampleBuilder() {
	b := batch.NewBuilder[int]()

	if err := b.Set(2, 30); err != nil {
		fmt.Printf("Error staging: %v\n", err)
		return
	}
	if err := b.Set(0, 99); err != nil {
		fmt.Printf("Error staging: %v\n", err)
		return
	}
	if err := b.Set(1, 10); err != nil {
		fmt.Printf("Error staging: %v\n", err)
		return
	}

	// A later staging of key 0 replaces the first one.
	if err := b.Set(0, 5); err != nil {
		fmt.Printf("Error staging: %v\n", err)
		return
	}

	q := b.Build(ipq.Min)
	for !q.IsEmpty() {
		key, err := q.PeekKey()
		if err != nil {
			fmt.Printf("Error peeking: %v\n", err)
			return
		}
		value, err := q.PollValue()
		if err != nil {
			fmt.Printf("Error polling: %v\n", err)
			return
		}
		fmt.Printf("key %d holds %d\n", key, value)
	}
	// Output:
	// key 0 holds 5
	// key 1 holds 10
	// key 2 holds 30
}
