// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// FieldFlags determine how the priority is extracted from each line.
type FieldFlags struct {
	Field       int    `subcmd:"field,0,'index of the field containing the numeric priority'"`
	Separator   string `subcmd:"separator,,'field separator, if not set fields are separated by whitespace'"`
	SkipInvalid bool   `subcmd:"skip-invalid,false,'log and skip lines whose priority cannot be parsed rather than failing'"`
}

type record struct {
	line     string
	priority float64
}

func (ff FieldFlags) priority(line string) (float64, error) {
	var fields []string
	if len(ff.Separator) == 0 {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, ff.Separator)
	}
	if ff.Field < 0 || ff.Field >= len(fields) {
		return 0, fmt.Errorf("no field at index %v", ff.Field)
	}
	return strconv.ParseFloat(strings.TrimSpace(fields[ff.Field]), 64)
}

// scan calls fn for every non-blank line read from rd. Lines whose priority
// cannot be parsed are either logged and skipped or collected and
// returned as a single error once all of rd has been read.
func (ff FieldFlags) scan(ctx context.Context, name string, rd io.Reader, fn func(record) error) error {
	errs := &errors.M{}
	sc := bufio.NewScanner(rd)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		p, err := ff.priority(line)
		if err != nil {
			err = errors.Annotate(fmt.Sprintf("%v:%v", name, n), err)
			if ff.SkipInvalid {
				ctxlog.Logger(ctx).Warn("skipping line", "error", err.Error())
				continue
			}
			errs.Append(err)
			continue
		}
		if err := fn(record{line: line, priority: p}); err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("%v:%v", name, n), err))
			break
		}
	}
	errs.Append(sc.Err())
	return errs.Err()
}
