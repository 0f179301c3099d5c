// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/graph"
)

type shortestFlags struct {
	cmdutil.LoggingFlags
}

// graphSpec is the yaml representation of a weighted graph, for example:
//
//	edges:
//	  - {from: a, to: b, weight: 1.5}
//	  - {from: b, to: c, weight: 2, undirected: true}
type graphSpec struct {
	Edges []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	Weight     float64 `yaml:"weight"`
	Undirected bool    `yaml:"undirected"`
}

func loadGraph(filename string) (*graph.Graph[string], error) {
	var gs graphSpec
	if err := cmdutil.ParseYAMLConfigFile(filename, &gs); err != nil {
		return nil, err
	}
	g := graph.New[string]()
	errs := &errors.M{}
	for i, e := range gs.Edges {
		add := g.AddEdge
		if e.Undirected {
			add = g.AddUndirected
		}
		if err := add(e.From, e.To, e.Weight); err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("%v: edge %v", filename, i), err))
		}
	}
	return g, errs.Err()
}

func (c *command) shortest(ctx context.Context, values any, args []string) error {
	fv := values.(*shortestFlags)
	ctx, closeLog, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}
	from, to := args[1], args[2]
	ctxlog.Logger(ctx).Info("loaded graph", "file", args[0], "nodes", len(g.Nodes()))
	paths := g.ShortestPaths(from)
	route, err := paths.To(to)
	if err != nil {
		return fmt.Errorf("no path from %v: %w", from, err)
	}
	cost, _ := paths.Distance(to)
	_, err = fmt.Fprintf(c.stdout, "%v\t%v\n", strings.Join(route, " -> "), cost)
	return err
}
