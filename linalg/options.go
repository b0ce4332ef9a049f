// SPDX-License-Identifier: MIT
// Package linalg: functional options for the solver and the cofactor
// kernels.
//
// Defaults:
//   - no logging (a discard logger),
//   - systems up to DefaultSmallInverseLimit unknowns are solved through
//     the explicit inverse, larger ones through QR,
//   - cofactor expansion refuses matrices above DefaultMaxCofactorOrder.
//
// WithX constructors panic on nonsensical values (programmer error).

package linalg

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	// DefaultSmallInverseLimit is the largest block order Solve inverts by
	// minor expansion instead of factorising.
	DefaultSmallInverseLimit = 3

	// DefaultMaxCofactorOrder bounds Det/Adjugate/Inverse: expansion along
	// the sparsest line is still factorial in the worst case.
	DefaultMaxCofactorOrder = 12
)

// Option configures a kernel call.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	smallInverse int
	maxCofactor  int
}

// discardLogger drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLogger routes Debug traces of the chosen solve path to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("linalg: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithSmallInverseLimit sets the largest system Solve handles through the
// explicit inverse. Zero disables the inverse path. Panics if n < 0.
func WithSmallInverseLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("linalg: WithSmallInverseLimit(%d): must be >= 0", n))
	}

	return func(o *options) { o.smallInverse = n }
}

// WithMaxCofactorOrder sets the largest order accepted by cofactor
// expansion. Panics if n < 1.
func WithMaxCofactorOrder(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("linalg: WithMaxCofactorOrder(%d): must be >= 1", n))
	}

	return func(o *options) { o.maxCofactor = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		smallInverse: DefaultSmallInverseLimit,
		maxCofactor:  DefaultMaxCofactorOrder,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
