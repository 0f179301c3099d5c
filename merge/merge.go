// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package merge provides a k-way merge of sorted inputs.
package merge

import (
	"cloudeng.io/pqueue/minheap"
)

type head[T any] struct {
	val   T
	input int
}

// Sorted merges inputs, each of which must already be sorted according
// to compare, into a single sorted slice. Values that compare as equal
// are returned in the order of the inputs they came from and, within an
// input, in their original order.
func Sorted[T any](compare func(a, b T) int, inputs ...[]T) []T {
	total := 0
	for _, in := range inputs {
		total += len(in)
	}
	h := minheap.NewFunc[int](func(a, b head[T]) int {
		if c := compare(a.val, b.val); c != 0 {
			return c
		}
		return a.input - b.input
	}, minheap.WithSliceCap(len(inputs)+1))
	next := make([]int, len(inputs))
	for i, in := range inputs {
		if len(in) > 0 {
			h.Enqueue(i, head[T]{val: in[0], input: i})
			next[i] = 1
		}
	}
	out := make([]T, 0, total)
	for !h.IsEmpty() {
		i, _ := h.Dequeue()
		out = append(out, inputs[i][next[i]-1])
		if n := next[i]; n < len(inputs[i]) {
			h.Enqueue(i, head[T]{val: inputs[i][n], input: i})
			next[i]++
		}
	}
	return out
}
