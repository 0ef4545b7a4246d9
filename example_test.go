package ipq_test

import (
	"fmt"

	"github.com/davidvella/ipq"
)

// ExampleNew demonstrates building a queue from an existing slice and
// polling it in priority order.
func ExampleNew() {
	q := ipq.New(ipq.Min, []int{3, 1, 4, 1, 5})

	for !q.IsEmpty() {
		value, err := q.PollValue()
		if err != nil {
			fmt.Printf("Error polling: %v\n", err)
			return
		}
		fmt.Println(value)
	}
	// Output:
	// 1
	// 1
	// 3
	// 4
	// 5
}

// ExampleQueue_Decrease demonstrates the decrease-key operation that
// shortest-path searches rely on: vertex 3 becomes cheaper to reach and
// moves ahead in the poll order while keeping its key.
func ExampleQueue_Decrease() {
	// Tentative distances for vertices 0..3, keyed by vertex number.
	q := ipq.New(ipq.Min, []int{0, 30, 40, 50})

	// A shorter path to vertex 3 is found.
	if err := q.Decrease(3, 10); err != nil {
		fmt.Printf("Error decreasing: %v\n", err)
		return
	}

	for !q.IsEmpty() {
		vertex, err := q.PeekKey()
		if err != nil {
			fmt.Printf("Error peeking: %v\n", err)
			return
		}
		distance, err := q.PollValue()
		if err != nil {
			fmt.Printf("Error polling: %v\n", err)
			return
		}
		fmt.Printf("vertex %d at distance %d\n", vertex, distance)
	}
	// Output:
	// vertex 0 at distance 0
	// vertex 3 at distance 10
	// vertex 1 at distance 30
	// vertex 2 at distance 40
}

// ExampleQueue_All demonstrates iterating the stored elements in key
// order, independent of their heap positions.
func ExampleQueue_All() {
	q := ipq.New[string](ipq.Min, nil)

	for i, name := range []string{"apple", "banana", "carrot"} {
		if err := q.Insert(i, name); err != nil {
			fmt.Printf("Error inserting: %v\n", err)
			return
		}
	}

	for key, value := range q.All() {
		fmt.Println(key, value)
	}
	// Output:
	// 0 apple
	// 1 banana
	// 2 carrot
}

// ExampleQueue_Drain demonstrates removing a contiguous key range in one
// call; the survivors are re-keyed from zero.
func ExampleQueue_Drain() {
	q := ipq.New(ipq.Min, []int{5, 6, 7, 8})

	removed, err := q.Drain(1, 2)
	if err != nil {
		fmt.Printf("Error draining: %v\n", err)
		return
	}

	fmt.Println(removed)
	fmt.Println(q.Len())
	// Output:
	// [6 7]
	// 2
}

// ExampleQueue_Push demonstrates a max-direction queue with
// automatically assigned keys.
func ExampleQueue_Push() {
	q := ipq.New[int](ipq.Max, nil)
	q.Push(13)
	q.Push(2)
	q.Push(8)

	fmt.Println(q)

	top, err := q.PollValue()
	if err != nil {
		fmt.Printf("Error polling: %v\n", err)
		return
	}
	fmt.Println(top)
	// Output:
	// Maximum Priority Queue of 3 elements and 2 branches
	// 13
}
