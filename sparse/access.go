// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/lvsparse/scalar"

// At returns the element at (r, c); structural zeros read as zero.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) At(r, c int) (T, error) {
	k, ok, err := m.sp.Lookup(r, c)
	if err != nil {
		return scalar.Zero[T](), matrixErrorf(opAt, err)
	}
	if !ok {
		return scalar.Zero[T](), nil
	}

	return m.data[k], nil
}

// Set assigns v at (r, c). Assigning to a structural zero grows the
// pattern: m is rebound to a new pattern with the entry inserted, the
// previous pattern is left untouched.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Set(r, c int, v T) error {
	sp, k, err := m.sp.AddEntry(r, c)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	if sp != m.sp {
		data := make([]T, len(m.data)+1)
		copy(data, m.data[:k])
		copy(data[k+1:], m.data[k:])
		m.sp, m.data = sp, data
	}
	m.data[k] = v

	return nil
}

// AtNZ returns stored value k.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) AtNZ(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		return scalar.Zero[T](), rangeError(opAt, "nonzero", k, len(m.data))
	}

	return m.data[k], nil
}

// SetNZ overwrites stored value k; the pattern never changes.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) SetNZ(k int, v T) error {
	if k < 0 || k >= len(m.data) {
		return rangeError(opSet, "nonzero", k, len(m.data))
	}
	m.data[k] = v

	return nil
}

// linear splits a column-major linear index into (row, col).
func (m *Matrix[T]) linear(tag string, k int) (int, int, error) {
	n := m.Numel()
	if k < 0 || k >= n {
		return 0, 0, rangeError(tag, "linear index", k, n)
	}
	nrow := m.Rows()

	return k % nrow, k / nrow, nil
}

// AtLinear reads the element at column-major linear index k.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) AtLinear(k int) (T, error) {
	r, c, err := m.linear(opAt, k)
	if err != nil {
		return scalar.Zero[T](), err
	}

	return m.At(r, c)
}

// SetLinear assigns at column-major linear index k, growing the pattern
// when needed.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) SetLinear(k int, v T) error {
	r, c, err := m.linear(opSet, k)
	if err != nil {
		return err
	}

	return m.Set(r, c, v)
}
