package merge

import (
	"cmp"
	"iter"

	"github.com/davidvella/ipq"
)

// A tournament tree is a binary tree laid out such that nodes N and N+1 have
// parent N/2. We store M leaf lanes in positions M...2M-1, and M-1 internal
// nodes in positions 1..M-1. Node 0 is a special node, containing the winner
// of the contest.
type Tree[E cmp.Ordered] struct {
	dir     ipq.Direction
	nodes   []node[E]
	sources []iter.Seq[E]
}

type node[E cmp.Ordered] struct {
	index int              // This is the loser for all nodes except the 0th, where it is the winner.
	value E                // Value copied from the loser lane, or winner for node 0.
	done  bool             // The lane is exhausted.
	next  func() (E, bool) // Only populated for leaf nodes.
}

// New builds a tree that merges sources into one stream ordered by dir.
// Each source must itself yield values ordered by dir, or the merged stream
// is ordered only per lane.
func New[E cmp.Ordered](dir ipq.Direction, sources ...iter.Seq[E]) *Tree[E] {
	return &Tree[E]{
		dir:     dir,
		nodes:   make([]node[E], len(sources)*2),
		sources: sources,
	}
}

// Queue adapts q into a lane that polls it to exhaustion, yielding values in
// the queue's own direction. Merging queues through a tree of the same
// direction produces one globally ordered stream; the queues are drained as
// a side effect.
func Queue[T cmp.Ordered](q *ipq.Queue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, err := q.PollValue()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// All returns the merged stream. The tree reads each source exactly once,
// so with destructive lanes such as Queue a second call yields nothing.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		for i, s := range t.sources {
			next, stop := iter.Pull(s)
			t.nodes[i+len(t.sources)].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i + len(t.sources)) // Call next() on each lane to get the first value.
		}
		t.initialize()
		for !t.nodes[0].done && yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

func (t *Tree[E]) moveNext(index int) bool {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return true
	}
	var zero E
	n.value = zero
	n.done = true
	return false
}

// ahead reports whether lane a orders before lane b per the tree's
// direction. An exhausted lane loses every contest, which is what retires it
// without needing a sentinel value past the end of E's range.
func (t *Tree[E]) ahead(a, b *node[E]) bool {
	switch {
	case a.done:
		return false
	case b.done:
		return true
	case t.dir == ipq.Max:
		return cmp.Less(b.value, a.value)
	default:
		return cmp.Less(a.value, b.value)
	}
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].done = t.nodes[winner].done
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.ahead(&nodes[left], &nodes[right]) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	nodes[pos].done = nodes[loser].done
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	winning := nodes[pos]
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.ahead(node, &winning) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winning.value = winning.value, node.value
			node.done, winning.done = winning.done, node.done
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
	nodes[0].value = winning.value
	nodes[0].done = winning.done
}

func parent(i int) int { return i >> 1 }
