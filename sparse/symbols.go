// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
)

// symbolicValues returns the stored values as scalar.Symbolic, or
// ErrUnsupported when T does not model expression nodes.
func (m *Matrix[T]) symbolicValues(tag string) ([]scalar.Symbolic, error) {
	var zero T
	if _, ok := any(zero).(scalar.Symbolic); !ok {
		return nil, fmt.Errorf("%s: %T: %w", tag, zero, ErrUnsupported)
	}
	out := make([]scalar.Symbolic, len(m.data))
	for k, v := range m.data {
		out[k] = any(v).(scalar.Symbolic)
	}

	return out, nil
}

// IsSymbolic reports whether any stored value depends on a symbol.
// Errors: ErrUnsupported for numeric element types.
func (m *Matrix[T]) IsSymbolic() (bool, error) {
	vs, err := m.symbolicValues("IsSymbolic")
	if err != nil {
		return false, err
	}
	for _, v := range vs {
		if !v.IsConstant() {
			return true, nil
		}
	}

	return false, nil
}

// Symbols lists the free symbols of all stored values in first-seen
// (column-major) order.
// Errors: ErrUnsupported for numeric element types.
func (m *Matrix[T]) Symbols() ([]string, error) {
	vs, err := m.symbolicValues(opSymbols)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, v := range vs {
		for _, s := range v.FreeSymbols() {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	return out, nil
}
