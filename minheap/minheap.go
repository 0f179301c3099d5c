// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package minheap provides a priority queue of (element, priority) pairs
// backed by a binary min-heap. The element with the smallest priority is
// always the next to be dequeued.
package minheap

import (
	"cmp"

	"cloudeng.io/errors"
)

// ErrEmpty is returned by Dequeue when the heap contains no elements.
var ErrEmpty = errors.New("heap is empty")

type item[E, P any] struct {
	element  E
	priority P
}

// Heap is a min-heap of elements ordered by their associated priority.
// The heap is stored as a slice with a dummy root at index 0, ie. the
// minimum is at index 1 and the node at index i has its parent at i/2 and
// its children at 2i and 2i+1.
//
// Elements with equal priorities are dequeued in a deterministic order
// for a given sequence of operations, but that order need not be the
// order in which they were enqueued.
//
// A Heap is not safe for concurrent use.
type Heap[E, P any] struct {
	items []item[E, P]
	cmp   func(a, b P) int
}

// New returns an empty heap whose priorities are ordered by cmp.Compare.
func New[E any, P cmp.Ordered](opts ...Option) *Heap[E, P] {
	return NewFunc[E](cmp.Compare[P], opts...)
}

// NewFunc returns an empty heap whose priorities are ordered by compare,
// which must implement a total order and return a negative number when
// a < b, zero when a == b and a positive number when a > b. A max-heap
// can be obtained by supplying a comparison that reverses its arguments.
func NewFunc[E, P any](compare func(a, b P) int, opts ...Option) *Heap[E, P] {
	if compare == nil {
		panic("minheap: nil comparison function")
	}
	o := options{sliceCap: 1}
	for _, fn := range opts {
		fn(&o)
	}
	return &Heap[E, P]{
		items: make([]item[E, P], 1, max(o.sliceCap, 1)),
		cmp:   compare,
	}
}

// Len returns the number of elements in the heap, excluding the dummy
// root.
func (h *Heap[E, P]) Len() int {
	return len(h.items) - 1
}

// IsEmpty returns true if the heap contains no elements.
func (h *Heap[E, P]) IsEmpty() bool {
	return len(h.items) == 1
}

// Enqueue adds element to the heap with the specified priority.
func (h *Heap[E, P]) Enqueue(element E, priority P) {
	h.items = append(h.items, item[E, P]{element: element, priority: priority})
	h.siftUp(len(h.items) - 1)
}

// Dequeue removes and returns the element with the smallest priority.
// It returns ErrEmpty if the heap is empty.
func (h *Heap[E, P]) Dequeue() (E, error) {
	last := len(h.items) - 1
	if last == 0 {
		var zero E
		return zero, ErrEmpty
	}
	e := h.items[1].element
	h.items[1] = h.items[last]
	h.items[last] = item[E, P]{} // don't retain the dequeued element.
	h.items = h.items[:last]
	if last > 1 {
		h.siftDown(1)
	}
	return e, nil
}

func (h *Heap[E, P]) siftUp(i int) {
	for i > 1 {
		p := i / 2
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[E, P]) siftDown(i int) {
	last := len(h.items) - 1
	for {
		smallest := i
		// The left child is tested first and is only displaced by a
		// strictly smaller right child.
		if l := 2 * i; l <= last && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 1; r <= last && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[E, P]) less(i, j int) bool {
	return h.cmp(h.items[i].priority, h.items[j].priority) < 0
}

func (h *Heap[E, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}
