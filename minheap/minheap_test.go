// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/pqueue/minheap"
)

func ExampleHeap() {
	h := minheap.New[string, int]()
	h.Enqueue("x", 10)
	h.Enqueue("y", 5)
	h.Enqueue("z", 7)
	for !h.IsEmpty() {
		e, _ := h.Dequeue()
		fmt.Printf("%v ", e)
	}
	_, err := h.Dequeue()
	fmt.Println(err)
	// Output:
	// y z x heap is empty
}

func ExampleNewFunc() {
	// Reverse the comparison to dequeue the largest priority first.
	h := minheap.NewFunc[string](func(a, b int) int { return b - a })
	for i, s := range []string{"one", "two", "three"} {
		h.Enqueue(s, i+1)
	}
	for !h.IsEmpty() {
		e, _ := h.Dequeue()
		fmt.Printf("%v ", e)
	}
	fmt.Println()
	// Output:
	// three two one
}

type pair struct {
	e string
	p int
}

func drain[E, P any](t *testing.T, h *minheap.Heap[E, P]) []E {
	t.Helper()
	var out []E
	for !h.IsEmpty() {
		e, err := h.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		h.Verify(t)
		out = append(out, e)
	}
	return out
}

func TestEmpty(t *testing.T) {
	h := minheap.New[string, float64]()
	if !h.IsEmpty() {
		t.Errorf("new heap is not empty")
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	e, err := h.Dequeue()
	if !errors.Is(err, minheap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, minheap.ErrEmpty)
	}
	if got, want := e, ""; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !h.IsEmpty() {
		t.Errorf("heap is not empty after a failed dequeue")
	}
	h.Verify(t)

	h.Enqueue("a", 1)
	if h.IsEmpty() {
		t.Errorf("heap is empty after an enqueue")
	}
	if _, err := h.Dequeue(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Dequeue(); !errors.Is(err, minheap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, minheap.ErrEmpty)
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScenario(t *testing.T) {
	h := minheap.New[string, int]()
	h.Enqueue("x", 10)
	h.Enqueue("y", 5)
	h.Enqueue("z", 7)
	h.Verify(t)
	for _, want := range []string{"y", "z", "x"} {
		got, err := h.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		h.Verify(t)
	}
	if _, err := h.Dequeue(); !errors.Is(err, minheap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, minheap.ErrEmpty)
	}
}

func TestDuplicates(t *testing.T) {
	input := []pair{{"A", 5}, {"B", 1}, {"C", 1}, {"D", 3}}
	run := func() []pair {
		h := minheap.New[pair, int]()
		for _, p := range input {
			h.Enqueue(p, p.p)
			h.Verify(t)
		}
		return drain(t, h)
	}
	first := run()
	var prios []int
	for _, p := range first {
		prios = append(prios, p.p)
	}
	if got, want := prios, []int{1, 1, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	ties := first[0].e + first[1].e
	if ties != "BC" && ties != "CB" {
		t.Errorf("got %v, want B and C", ties)
	}
	for i := 0; i < 10; i++ {
		if got, want := run(), first; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestAllSame(t *testing.T) {
	h := minheap.New[int, uint32]()
	for i := 0; i < 100; i++ {
		h.Enqueue(i, 0)
		h.Verify(t)
	}
	out := drain(t, h)
	if got, want := len(out), 100; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	slices.Sort(out)
	for i, v := range out {
		if got, want := v, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSize(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234)) // #nosec: G404
	h := minheap.New[int, int]()
	size := 0
	for i := 0; i < 5000; i++ {
		if rnd.Intn(3) == 0 {
			_, err := h.Dequeue()
			if size == 0 {
				if !errors.Is(err, minheap.ErrEmpty) {
					t.Fatalf("%v: got %v, want %v", i, err, minheap.ErrEmpty)
				}
			} else {
				if err != nil {
					t.Fatalf("%v: unexpected error: %v", i, err)
				}
				size--
			}
		} else {
			h.Enqueue(i, rnd.Intn(100))
			size++
		}
		if got, want := h.Len(), size; got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
		if got, want := h.IsEmpty(), size == 0; got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
	}
	h.Verify(t)
}

func TestSortedExtraction(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 33, 1000} {
		rnd := rand.New(rand.NewSource(int64(n))) // #nosec: G404
		h := minheap.New[int, int]()
		input := make([]int, n)
		for i := range input {
			input[i] = rnd.Intn(n*2 + 1)
			h.Enqueue(input[i], input[i])
		}
		h.Verify(t)
		if got, want := h.Len(), n; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		out := drain(t, h)
		slices.Sort(input)
		if n == 0 {
			input = nil
		}
		if got, want := out, input; !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
	}
}

func TestInterleaved(t *testing.T) {
	rnd := rand.New(rand.NewSource(7)) // #nosec: G404
	h := minheap.New[float64, float64]()
	prev := -1.0
	for i := 0; i < 2000; i++ {
		p := rnd.Float64()
		if p < prev {
			// keep the output monotonic so that it can be checked.
			p += prev
		}
		h.Enqueue(p, p)
		h.Verify(t)
		if i%3 == 0 {
			v, err := h.Dequeue()
			if err != nil {
				t.Fatal(err)
			}
			if v < prev {
				t.Fatalf("%v: got %v, which is less than %v", i, v, prev)
			}
			prev = v
			h.Verify(t)
		}
	}
}

func TestCustomCompare(t *testing.T) {
	h := minheap.NewFunc[string](strings.Compare)
	words := []string{"pear", "apple", "fig", "banana", "cherry", "apple"}
	for _, w := range words {
		h.Enqueue(strings.ToUpper(w), w)
	}
	h.Verify(t)
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	var want []string
	for _, w := range sorted {
		want = append(want, strings.ToUpper(w))
	}
	if got := drain(t, h); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	desc := minheap.NewFunc[int](func(a, b int) int { return b - a })
	for i := 0; i < 20; i++ {
		desc.Enqueue(i, i)
	}
	desc.Verify(t)
	for i := 19; i >= 0; i-- {
		v, err := desc.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := v, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestNilCompare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	minheap.NewFunc[int, int](nil)
}

func TestSliceCap(t *testing.T) {
	h := minheap.New[int, int](minheap.WithSliceCap(65))
	if got, want := h.Cap(), 65; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 64; i > 0; i-- {
		h.Enqueue(i, i)
	}
	if got, want := h.Cap(), 65; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if e, p := h.Slot(1); e != 1 || p != 1 {
		t.Errorf("got %v/%v, want 1/1", e, p)
	}
	if e, p := h.Slot(0); e != 0 || p != 0 {
		t.Errorf("dummy root is not empty: %v/%v", e, p)
	}
	h = minheap.New[int, int](minheap.WithSliceCap(0))
	h.Enqueue(1, 1)
	h.Verify(t)
}
