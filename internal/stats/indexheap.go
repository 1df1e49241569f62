package stats

// Ownership states for window positions tracked by the two-heap engine.
// A position stays ownerNone when its sample is missing and never enters
// either heap.
const (
	ownerNone int8 = iota
	ownerLower
	ownerUpper
)

// indexHeap is a binary heap of indices into the original input
// sequence. Entries are never value copies: every comparison dereferences
// through values, and exact ties break toward the smaller index so
// repeated samples order deterministically.
//
// The owner and deleted side arrays are indexed by original position and
// shared with the sibling heap. Eviction only flags deleted (lazy
// deletion); the physical entry leaves the heap when it surfaces at the
// top during prune.
type indexHeap struct {
	items   []int
	values  []float64
	owner   []int8
	deleted []bool
	id      int8 // ownerLower or ownerUpper
	max     bool // true for the lower (max-at-top) heap
}

func newIndexHeap(values []float64, owner []int8, deleted []bool, id int8, max bool) *indexHeap {
	return &indexHeap{
		items:   make([]int, 0, len(values)),
		values:  values,
		owner:   owner,
		deleted: deleted,
		id:      id,
		max:     max,
	}
}

// before reports whether original index a belongs above original index b.
func (h *indexHeap) before(a, b int) bool {
	va, vb := h.values[a], h.values[b]
	if va == vb {
		return a < b
	}
	if h.max {
		return va > vb
	}
	return va < vb
}

// empty reports whether the heap holds no physical entries. After a
// prune, an empty heap is exactly a heap with no live entries.
func (h *indexHeap) empty() bool {
	return len(h.items) == 0
}

// top returns the original index at the heap root. Callers prune first
// so the root is live.
func (h *indexHeap) top() int {
	return h.items[0]
}

// topValue returns the sample at the heap root.
func (h *indexHeap) topValue() float64 {
	return h.values[h.items[0]]
}

// push inserts original index idx and records this heap as its owner.
func (h *indexHeap) push(idx int) {
	h.owner[idx] = h.id
	h.items = append(h.items, idx)
	h.siftUp(len(h.items) - 1)
}

// popTop removes and returns the root index, clearing its ownership.
func (h *indexHeap) popTop() int {
	idx := h.items[0]
	h.owner[idx] = ownerNone
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return idx
}

// markDeleted flags idx for lazy removal without touching heap shape.
func (h *indexHeap) markDeleted(idx int) {
	h.deleted[idx] = true
}

// prune physically removes tombstoned entries sitting at the top. Each
// entry is removed at most once over its lifetime, so the cost amortizes
// across the slide.
func (h *indexHeap) prune() {
	for len(h.items) > 0 && h.deleted[h.items[0]] {
		idx := h.popTop()
		h.deleted[idx] = false
	}
}

func (h *indexHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *indexHeap) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		if l := 2*i + 1; l < n && h.before(h.items[l], h.items[best]) {
			best = l
		}
		if r := 2*i + 2; r < n && h.before(h.items[r], h.items[best]) {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
