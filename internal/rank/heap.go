// Package rank provides an array-backed binary max-heap used as a bounded
// top-k selector: build once over all scored candidates, then extract at
// most k times, which beats a full sort when k is much smaller than the
// candidate count.
package rank

import "errors"

// ErrEmptyHeap is returned by PopMax on an empty heap. The match pipeline
// always checks Len first, so seeing this error means a caller misused the
// heap directly.
var ErrEmptyHeap = errors.New("rank: heap is empty")

const (
	initialCap = 16
	// Backing storage halves once utilization drops to a quarter of at
	// least this capacity, bounding memory after large extraction bursts.
	shrinkThreshold = 64
)

// Heap is a binary max-heap over an explicit total-order comparison
// function: cmp(a, b) < 0 when a orders before b, and the maximum element
// by cmp sits at the root. Removal by value is deliberately unsupported.
type Heap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New returns an empty heap ordered by cmp.
func New[T any](cmp func(a, b T) int) *Heap[T] {
	return &Heap[T]{items: make([]T, 0, initialCap), cmp: cmp}
}

// Build heapifies a copy of items in O(n) with a bottom-up sift.
func Build[T any](items []T, cmp func(a, b T) int) *Heap[T] {
	h := &Heap[T]{items: append([]T(nil), items...), cmp: cmp}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len returns the number of elements held.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Cap returns the current backing capacity.
func (h *Heap[T]) Cap() int {
	return cap(h.items)
}

// Push inserts item in O(log n), doubling the backing storage when full.
func (h *Heap[T]) Push(item T) {
	if len(h.items) == cap(h.items) {
		grown := make([]T, len(h.items), max(cap(h.items)*2, initialCap))
		copy(grown, h.items)
		h.items = grown
	}
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// PopMax removes and returns the maximum element in O(log n).
func (h *Heap[T]) PopMax() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	if cap(h.items) >= shrinkThreshold && len(h.items) <= cap(h.items)/4 {
		shrunk := make([]T, len(h.items), cap(h.items)/2)
		copy(shrunk, h.items)
		h.items = shrunk
	}
	return top, nil
}

// Contains reports whether an element comparing equal to item is held.
// Linear scan; the comparison function is the only notion of equality.
func (h *Heap[T]) Contains(item T) bool {
	for i := range h.items {
		if h.cmp(h.items[i], item) == 0 {
			return true
		}
	}
	return false
}

// Items returns a copy of the backing array in heap order.
func (h *Heap[T]) Items() []T {
	return append([]T(nil), h.items...)
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		largest := left
		if right := left + 1; right < n && h.cmp(h.items[right], h.items[left]) > 0 {
			largest = right
		}
		if h.cmp(h.items[largest], h.items[i]) <= 0 {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
