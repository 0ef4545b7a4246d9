// Package merge combines multiple ordered streams into one using a
// tournament tree (also known as a loser tree). Each internal node holds the
// "loser" of a comparison between its children and the root holds the
// overall "winner", so advancing the stream costs O(log k) comparisons for k
// lanes instead of the O(k) of a naive scan.
//
// The intended use is collapsing several priority queues into a single
// globally ordered stream: wrap each queue with Queue, hand the lanes to
// New with the queues' shared direction, and range over All.
//
// Key features:
//   - Generic over any ordered element type
//   - Min or max ordering selected by ipq.Direction
//   - Lanes are plain iter.Seq values; any ordered source fits
//   - Exhausted lanes retire via bookkeeping, so no sentinel value past the
//     end of the element range is ever needed
//   - O(log k) comparisons per element
//
// Basic usage:
//
//	a := ipq.New(ipq.Min, []int{1, 3, 5})
//	b := ipq.New(ipq.Min, []int{2, 4, 6})
//
//	tree := merge.New(ipq.Min, merge.Queue(a), merge.Queue(b))
//	for v := range tree.All() {
//	    fmt.Println(v) // Will print: 1, 2, 3, 4, 5, 6
//	}
//
// The tree reads each lane exactly once. Lanes built with Queue drain their
// queue as they advance, so after All finishes the queues are empty.
package merge
