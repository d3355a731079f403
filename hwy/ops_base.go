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

// This file provides pure Go (scalar) implementations of the Uint32x16
// operations. Method names and semantics follow archsimd.Uint32x16 so that
// portable and native kernels can be written line for line alike.

// LoadUint32x16Slice loads 16 lanes from the first 16 elements of s.
// It panics if len(s) < 16.
func LoadUint32x16Slice(s []uint32) Uint32x16 {
	var v Uint32x16
	copy(v[:], s[:Uint32x16Lanes])
	return v
}

// BroadcastUint32x16 returns a vector with every lane set to x.
func BroadcastUint32x16(x uint32) Uint32x16 {
	var v Uint32x16
	for i := range v {
		v[i] = x
	}
	return v
}

// StoreSlice stores the 16 lanes into the first 16 elements of s.
// It panics if len(s) < 16.
func (v Uint32x16) StoreSlice(s []uint32) {
	copy(s[:Uint32x16Lanes], v[:])
}

// GetLane returns the value of lane i.
func (v Uint32x16) GetLane(i int) uint32 {
	return v[i]
}

// And returns the lanewise x & y.
func (v Uint32x16) And(y Uint32x16) Uint32x16 {
	for i := range v {
		v[i] &= y[i]
	}
	return v
}

// Or returns the lanewise x | y.
func (v Uint32x16) Or(y Uint32x16) Uint32x16 {
	for i := range v {
		v[i] |= y[i]
	}
	return v
}

// Xor returns the lanewise x ^ y.
func (v Uint32x16) Xor(y Uint32x16) Uint32x16 {
	for i := range v {
		v[i] ^= y[i]
	}
	return v
}

// AndNot returns the lanewise x &^ y.
//
// Note the operand order matches archsimd (x AND NOT y), not the
// Highway C++ AndNot(a, b) = ~a & b.
func (v Uint32x16) AndNot(y Uint32x16) Uint32x16 {
	for i := range v {
		v[i] &^= y[i]
	}
	return v
}

// ShiftAllLeft shifts every lane left by n bits, filling with zeros.
// Shifts of 32 or more produce zero.
func (v Uint32x16) ShiftAllLeft(n uint64) Uint32x16 {
	for i := range v {
		v[i] <<= n
	}
	return v
}

// ShiftAllRight shifts every lane right by n bits, filling with zeros.
// Shifts of 32 or more produce zero.
func (v Uint32x16) ShiftAllRight(n uint64) Uint32x16 {
	for i := range v {
		v[i] >>= n
	}
	return v
}
