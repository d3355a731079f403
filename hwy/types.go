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

// Package hwy provides the portable SIMD layer used by the bit-matrix kernels.
//
// It detects the SIMD instruction set at startup (AVX-512, AVX2, SSE2, NEON
// or scalar) and offers fixed-width vector types whose method sets mirror the
// archsimd types. A kernel written against Uint32x16 reads the same as its
// archsimd.Uint32x16 counterpart, so the portable kernel doubles as the
// reference for the native ones.
//
// Basic usage:
//
//	import "github.com/bitslice/go-bitmatrix/hwy"
//
//	a := hwy.LoadUint32x16Slice(rows[:16])
//	b := hwy.LoadUint32x16Slice(rows[16:])
//	a.Xor(b).StoreSlice(rows[:16])
//
// Setting HWY_NO_SIMD forces the scalar level, which makes every dispatched
// kernel fall back to its portable implementation.
package hwy

// Uint32x16Lanes is the lane count of Uint32x16.
const Uint32x16Lanes = 16

// Uint32x16 is a fixed 16-lane vector of uint32 values.
//
// It is the portable counterpart of archsimd.Uint32x16 (one AVX-512
// register). Unlike a slice-backed vector it is a plain value type, so
// kernels built on it do not allocate.
type Uint32x16 [Uint32x16Lanes]uint32
