// SPDX-License-Identifier: MIT

package symbolic

import "errors"

var (
	// ErrUnboundSymbol is returned by Eval when a symbol has no value in
	// the environment.
	ErrUnboundSymbol = errors.New("symbolic: unbound symbol")

	// ErrEmptyName is returned by NewSymbol for an empty name.
	ErrEmptyName = errors.New("symbolic: empty symbol name")
)
