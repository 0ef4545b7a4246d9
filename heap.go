package ipq

import "cmp"

// parentNode returns the parent position of node i. The root is its own
// parent, which terminates swim loops naturally.
func parentNode(i int) int {
	if i == 0 {
		return 0
	}
	return (i - 1) / 2
}

// valueAt reads the value occupying node position i.
func (q *Queue[T]) valueAt(i int) T {
	return q.values[q.maps.im[i].index]
}

// less reports whether the occupant of node i orders ahead of the occupant
// of node j for the queue's direction.
func (q *Queue[T]) less(i, j int) bool {
	if q.dir == Max {
		return cmp.Less(q.valueAt(j), q.valueAt(i))
	}
	return cmp.Less(q.valueAt(i), q.valueAt(j))
}

// minChild returns the occupied child of node i that orders first, or false
// when i has no occupied children. When both children hold equal priorities
// the left child wins. Callers may rely on that tie-break; it keeps poll
// order deterministic among equal elements.
func (q *Queue[T]) minChild(i int) (int, bool) {
	left := 2*i + 1
	if left >= q.size || left < 0 { // left < 0 after int overflow
		return 0, false
	}
	child := left
	if right := left + 1; right < q.size && q.less(right, left) {
		child = right
	}
	return child, true
}

// swim moves the occupant of node i toward the root until its parent orders
// ahead of it or it reaches the root.
func (q *Queue[T]) swim(i int) {
	for p := parentNode(i); i != p && q.less(i, p); p = parentNode(i) {
		q.maps.swapNodes(i, p)
		i = p
	}
}

// sink moves the occupant of node i toward the leaves, swapping with its
// first-ordering child, until no child orders ahead of it.
func (q *Queue[T]) sink(i int) {
	for {
		c, ok := q.minChild(i)
		if !ok || !q.less(c, i) {
			return
		}
		q.maps.swapNodes(i, c)
		i = c
	}
}

// heapify restores heap order across every occupied node with a bottom-up
// sink pass over the internal nodes, O(n) for n occupied nodes.
func (q *Queue[T]) heapify() {
	for i := q.size/2 - 1; i >= 0; i-- {
		q.sink(i)
	}
}
