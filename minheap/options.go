// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap

type options struct {
	sliceCap int
}

// Option represents the options that can be passed to New and NewFunc.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's elements. The capacity includes the dummy root.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}
