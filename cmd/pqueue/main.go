// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqueue orders text records by a numeric priority field, merges
// pre-sorted files and finds shortest paths in weighted graphs, all using
// cloudeng.io/pqueue/minheap.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: pqueue
summary: order records by priority using a binary min-heap
commands:
  - name: sort
    summary: print lines in ascending order of a numeric priority field, reading from stdin if no file is specified
    arguments:
      - "[file]"
  - name: merge
    summary: merge files whose lines are already sorted by a numeric priority field
    arguments:
      - <file>
      - ...
  - name: shortest
    summary: print the shortest path, and its cost, between two nodes of a weighted graph read from a yaml file
    arguments:
      - <graph.yaml>
      - <from>
      - <to>
`

type command struct {
	stdin  io.Reader
	stdout io.Writer
}

func cli(c *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("sort").MustRunnerAndFlags(c.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("merge").MustRunnerAndFlags(c.merge,
		subcmd.MustRegisteredFlagSet(&mergeFlags{}))
	cmdSet.Set("shortest").MustRunnerAndFlags(c.shortest,
		subcmd.MustRegisteredFlagSet(&shortestFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli(&command{stdin: os.Stdin, stdout: os.Stdout}))
}

// withLogger returns a context carrying the logger configured by lf and
// a function that must be called to close any log file.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}
