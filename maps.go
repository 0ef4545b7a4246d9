package ipq

import "math/bits"

// slot is one cell of a translation map: it either holds an index or is
// empty. The zero value is empty.
type slot struct {
	index int
	ok    bool
}

// mapping is the pair of equal-length arrays that translate key indices to
// heap node positions and back. Both arrays are always the same power-of-two
// length, and they stay bijective: pm[k] holds node i exactly when im[i]
// holds key k.
type mapping struct {
	pm []slot // key index -> node position
	im []slot // node position -> key index
}

func newMapping(capacity int) mapping {
	return mapping{
		pm: make([]slot, capacity),
		im: make([]slot, capacity),
	}
}

func (m *mapping) capacity() int {
	return len(m.pm)
}

// resolve translates a key index to its current node position.
func (m *mapping) resolve(key int) (int, bool) {
	if key < 0 || key >= len(m.pm) || !m.pm[key].ok {
		return 0, false
	}
	return m.pm[key].index, true
}

// keyAt translates a node position back to the key occupying it. Node
// positions move whenever the heap does, so this stays internal.
func (m *mapping) keyAt(node int) (int, bool) {
	if node < 0 || node >= len(m.im) || !m.im[node].ok {
		return 0, false
	}
	return m.im[node].index, true
}

// place records key at node in both directions.
func (m *mapping) place(key, node int) {
	m.pm[key] = slot{index: node, ok: true}
	m.im[node] = slot{index: key, ok: true}
}

// remove empties key's cell and node's cell. The caller pairs them up.
func (m *mapping) remove(key, node int) {
	m.pm[key] = slot{}
	m.im[node] = slot{}
}

// swapNodes exchanges the occupants of node positions i and j, updating both
// directions together. It is the only primitive that moves an element from
// one node to another; it never touches values.
func (m *mapping) swapNodes(i, j int) {
	m.pm[m.im[i].index].index = j
	m.pm[m.im[j].index].index = i
	m.im[i], m.im[j] = m.im[j], m.im[i]
}

// grow extends both arrays to the next power of two covering need slots.
// New cells start empty. Growing never moves an occupant, so the bijection
// is untouched.
func (m *mapping) grow(need int) {
	if need <= len(m.pm) {
		return
	}
	n := nextPowerOfTwo(need)
	pm := make([]slot, n)
	im := make([]slot, n)
	copy(pm, m.pm)
	copy(im, m.im)
	m.pm, m.im = pm, im
}

// reset empties every cell in both directions, keeping capacity.
func (m *mapping) reset() {
	clear(m.pm)
	clear(m.im)
}

// nextPowerOfTwo returns the smallest power of two that is >= n. The
// smallest capacity is 1, so an empty queue still owns a mapped cell.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
