// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/merge"
	"cloudeng.io/pqueue/minheap"
)

type sortFlags struct {
	cmdutil.LoggingFlags
	FieldFlags
	Descending bool `subcmd:"descending,false,'print lines in descending order of priority'"`
}

type mergeFlags struct {
	cmdutil.LoggingFlags
	FieldFlags
}

func (c *command) sort(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	ctx, closeLog, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closeLog()

	name, rd := "stdin", c.stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		name, rd = args[0], f
	}

	// The heap always dequeues the smallest priority first, so negate
	// the priorities to obtain a descending order.
	sign := 1.0
	if fv.Descending {
		sign = -1.0
	}
	h := minheap.New[string, float64]()
	err = fv.scan(ctx, name, rd, func(r record) error {
		h.Enqueue(r.line, sign*r.priority)
		return nil
	})
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("sorting", "input", name, "records", h.Len(), "descending", fv.Descending)

	wr := bufio.NewWriter(c.stdout)
	for !h.IsEmpty() {
		line, err := h.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintln(wr, line)
	}
	return wr.Flush()
}

func (c *command) merge(ctx context.Context, values any, args []string) error {
	fv := values.(*mergeFlags)
	ctx, closeLog, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closeLog()

	inputs := make([][]record, len(args))
	for i, name := range args {
		recs, err := readSorted(ctx, fv.FieldFlags, name)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("read", "input", name, "records", len(recs))
		inputs[i] = recs
	}
	merged := merge.Sorted(func(a, b record) int {
		return cmp.Compare(a.priority, b.priority)
	}, inputs...)

	wr := bufio.NewWriter(c.stdout)
	for _, r := range merged {
		fmt.Fprintln(wr, r.line)
	}
	return wr.Flush()
}

func readSorted(ctx context.Context, ff FieldFlags, name string) ([]record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var recs []record
	err = ff.scan(ctx, name, f, func(r record) error {
		if n := len(recs); n > 0 && r.priority < recs[n-1].priority {
			return fmt.Errorf("not sorted: %v follows %v", r.priority, recs[n-1].priority)
		}
		recs = append(recs, r)
		return nil
	})
	return recs, err
}
