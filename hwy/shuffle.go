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

package hwy

// This file provides shuffle and permutation operations for Uint32x16.

// ConcatSwizzle builds a vector from the 32 lanes of a and b concatenated.
// Lane i of the result is a[idx[i]] if idx[i] < 16, else b[idx[i]-16].
// Only the low 5 bits of each index are used.
//
// This is the two-table lookup performed by VPERMI2D on AVX-512.
func ConcatSwizzle(a, b Uint32x16, idx *[Uint32x16Lanes]uint8) Uint32x16 {
	var r Uint32x16
	for i, j := range idx {
		j &= 2*Uint32x16Lanes - 1
		if j < Uint32x16Lanes {
			r[i] = a[j]
		} else {
			r[i] = b[j-Uint32x16Lanes]
		}
	}
	return r
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0..a15], [b0..b15] -> [a0,b0,a1,b1,...,a7,b7]
func InterleaveLower(a, b Uint32x16) Uint32x16 {
	var r Uint32x16
	const half = Uint32x16Lanes / 2
	for i := 0; i < half; i++ {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0..a15], [b0..b15] -> [a8,b8,a9,b9,...,a15,b15]
func InterleaveUpper(a, b Uint32x16) Uint32x16 {
	var r Uint32x16
	const half = Uint32x16Lanes / 2
	for i := 0; i < half; i++ {
		r[2*i] = a[half+i]
		r[2*i+1] = b[half+i]
	}
	return r
}
