// SPDX-License-Identifier: MIT

// Package sparse: functional options for constructors and conversions.

package sparse

// DefaultDropZeros controls whether FromDense stores exact zeros.
// false ⇒ every position of the input becomes a structural nonzero.
const DefaultDropZeros = false

// Option configures constructors such as FromDense and FromGonum.
type Option func(*options)

type options struct {
	dropZeros bool // DefaultDropZeros
}

// WithDropZeros makes dense constructors skip values that are exactly zero,
// leaving them structurally zero.
func WithDropZeros() Option {
	return func(o *options) { o.dropZeros = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{dropZeros: DefaultDropZeros}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
