// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitmatrix

import (
	"fmt"
	"strings"
)

// Size is the side length of a Matrix32.
const Size = 32

// Matrix32 is a 32x32 matrix over GF(2). Row i is element i and bit j of
// row i (LSB = 0) is the entry at column j.
type Matrix32 [Size]uint32

// useAVX512 selects the AVX-512 kernel.
// Set in init() by architecture-specific files. Kernels are called
// directly, not through a function variable, so that m does not escape.
var useAVX512 bool

// Transpose32 transposes m in place using the best kernel for this CPU.
// Afterwards bit j of row i holds what bit i of row j held before.
//
// It does not allocate and is safe to call concurrently on distinct matrices.
func Transpose32(m *Matrix32) {
	if useAVX512 {
		transpose32AVX512(m)
		return
	}
	BaseTranspose32(m)
}

// Transpose returns the transpose of m, leaving m unchanged.
func (m Matrix32) Transpose() Matrix32 {
	Transpose32(&m)
	return m
}

// KernelName reports which kernel Transpose32 dispatches to:
// "avx512" or "fallback".
func KernelName() string {
	if useAVX512 {
		return "avx512"
	}
	return "fallback"
}

// Identity32 returns the identity matrix, row i = 1 << i.
func Identity32() Matrix32 {
	var m Matrix32
	for i := range m {
		m[i] = 1 << i
	}
	return m
}

// Bit reports whether the entry at (row, col) is set.
// It panics if row or col is outside [0, 32).
func (m *Matrix32) Bit(row, col int) bool {
	checkCol(col)
	return m[row]>>uint(col)&1 == 1
}

// SetBit sets the entry at (row, col) to v.
// It panics if row or col is outside [0, 32).
func (m *Matrix32) SetBit(row, col int, v bool) {
	checkCol(col)
	if v {
		m[row] |= 1 << uint(col)
	} else {
		m[row] &^= 1 << uint(col)
	}
}

// Xor returns the word-wise XOR of m and o, which is matrix addition over GF(2).
func (m Matrix32) Xor(o Matrix32) Matrix32 {
	for i := range m {
		m[i] ^= o[i]
	}
	return m
}

// String renders m as 32 lines of '0' and '1', column 0 first.
func (m Matrix32) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for i, row := range m {
		for j := 0; j < Size; j++ {
			sb.WriteByte('0' + byte(row>>uint(j)&1))
		}
		if i < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func checkCol(col int) {
	if uint(col) >= Size {
		panic(fmt.Sprintf("bitmatrix: column index %d out of range [0,%d)", col, Size))
	}
}
