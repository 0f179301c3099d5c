// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides a weighted, directed graph and single-source
// shortest path search over it using cloudeng.io/pqueue/minheap.
package graph

import (
	"fmt"
	"math"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue/minheap"
)

var (
	// ErrNegativeWeight is returned when adding an edge whose weight is
	// negative or NaN.
	ErrNegativeWeight = errors.New("edge weight must be a non-negative number")
	// ErrUnreachable is returned when there is no path to a node.
	ErrUnreachable = errors.New("node is unreachable")
)

// Edge represents a directed, weighted edge.
type Edge[N comparable] struct {
	To     N
	Weight float64
}

// Graph is a directed graph with non-negative edge weights. It is not
// safe for concurrent use.
type Graph[N comparable] struct {
	nodes []N
	edges map[N][]Edge[N]
}

// New returns an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{edges: map[N][]Edge[N]{}}
}

func (g *Graph[N]) addNode(n N) {
	if _, ok := g.edges[n]; ok {
		return
	}
	g.nodes = append(g.nodes, n)
	g.edges[n] = nil
}

// AddEdge adds a directed edge from 'from' to 'to'.
func (g *Graph[N]) AddEdge(from, to N, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return errors.Annotate(fmt.Sprintf("%v -> %v: %v", from, to, weight), ErrNegativeWeight)
	}
	g.addNode(from)
	g.addNode(to)
	g.edges[from] = append(g.edges[from], Edge[N]{To: to, Weight: weight})
	return nil
}

// AddUndirected adds edges in both directions between a and b.
func (g *Graph[N]) AddUndirected(a, b N, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// Nodes returns all nodes in the order in which they were first added.
func (g *Graph[N]) Nodes() []N {
	return slices.Clone(g.nodes)
}

// Edges returns the outgoing edges of n.
func (g *Graph[N]) Edges(n N) []Edge[N] {
	return slices.Clone(g.edges[n])
}

// Paths represents the result of a single-source shortest path search.
type Paths[N comparable] struct {
	source N
	dist   map[N]float64
	prev   map[N]N
}

type visit[N comparable] struct {
	node N
	dist float64
}

// ShortestPaths computes the shortest paths from src to every node
// reachable from it using Dijkstra's algorithm. Since the heap does not
// support decreasing a priority in place, a node may be enqueued more than
// once and any stale entries are skipped when dequeued.
func (g *Graph[N]) ShortestPaths(src N) Paths[N] {
	p := Paths[N]{
		source: src,
		dist:   map[N]float64{src: 0},
		prev:   map[N]N{},
	}
	done := map[N]bool{}
	h := minheap.New[visit[N], float64](minheap.WithSliceCap(len(g.nodes) + 1))
	h.Enqueue(visit[N]{node: src}, 0)
	for !h.IsEmpty() {
		v, _ := h.Dequeue()
		if done[v.node] || v.dist > p.dist[v.node] {
			continue
		}
		done[v.node] = true
		for _, e := range g.edges[v.node] {
			d := v.dist + e.Weight
			if cur, ok := p.dist[e.To]; ok && cur <= d {
				continue
			}
			p.dist[e.To] = d
			p.prev[e.To] = v.node
			h.Enqueue(visit[N]{node: e.To, dist: d}, d)
		}
	}
	return p
}

// Source returns the node that the paths were computed from.
func (p Paths[N]) Source() N {
	return p.source
}

// Distance returns the length of the shortest path to n and false if n is
// unreachable.
func (p Paths[N]) Distance(n N) (float64, bool) {
	d, ok := p.dist[n]
	return d, ok
}

// To returns the nodes along the shortest path from the source to n,
// inclusive of both.
func (p Paths[N]) To(n N) ([]N, error) {
	if _, ok := p.dist[n]; !ok {
		return nil, errors.Annotate(fmt.Sprintf("%v", n), ErrUnreachable)
	}
	path := []N{n}
	for n != p.source {
		n = p.prev[n]
		path = append(path, n)
	}
	slices.Reverse(path)
	return path, nil
}
