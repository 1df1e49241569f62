package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeaps(values []float64) (*indexHeap, *indexHeap) {
	owner := make([]int8, len(values))
	deleted := make([]bool, len(values))
	lower := newIndexHeap(values, owner, deleted, ownerLower, true)
	upper := newIndexHeap(values, owner, deleted, ownerUpper, false)
	return lower, upper
}

func TestIndexHeap_Ordering(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	lower, upper := newTestHeaps(values)

	for i := range values {
		lower.push(i)
	}
	// Max-heap: indices surface in descending value order, equal values
	// by ascending index.
	wantOrder := []int{4, 2, 0, 1, 3}
	for _, want := range wantOrder {
		assert.Equal(t, want, lower.popTop())
	}
	assert.True(t, lower.empty())

	for i := range values {
		upper.push(i)
	}
	wantOrder = []int{1, 3, 0, 2, 4}
	for _, want := range wantOrder {
		assert.Equal(t, want, upper.popTop())
	}
}

func TestIndexHeap_OwnershipTracking(t *testing.T) {
	values := []float64{2, 7}
	lower, upper := newTestHeaps(values)

	lower.push(0)
	upper.push(1)
	assert.Equal(t, ownerLower, lower.owner[0])
	assert.Equal(t, ownerUpper, upper.owner[1])

	idx := lower.popTop()
	require.Equal(t, 0, idx)
	assert.Equal(t, ownerNone, lower.owner[0])

	upper.push(idx)
	assert.Equal(t, ownerUpper, upper.owner[0])
}

func TestIndexHeap_LazyDeletion(t *testing.T) {
	values := []float64{10, 30, 20}
	lower, _ := newTestHeaps(values)
	for i := range values {
		lower.push(i)
	}

	// Tombstoning does not move anything until the entry surfaces.
	lower.markDeleted(1)
	assert.Equal(t, 1, lower.top())

	lower.prune()
	assert.Equal(t, 2, lower.top())
	assert.Equal(t, 20.0, lower.topValue())
	// The flag is cleared on physical removal so the slot can be reused.
	assert.False(t, lower.deleted[1])

	// Tombstones below the top survive a prune untouched.
	lower.markDeleted(0)
	lower.prune()
	assert.Equal(t, 2, lower.top())
	assert.True(t, lower.deleted[0])

	lower.markDeleted(2)
	lower.prune()
	assert.True(t, lower.empty())
}
