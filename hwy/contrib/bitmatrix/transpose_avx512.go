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

//go:build amd64 && goexperiment.simd

package bitmatrix

import (
	"simd/archsimd"

	"github.com/bitslice/go-bitmatrix/hwy"
)

func init() {
	if hwy.CurrentLevel() == hwy.DispatchAVX512 {
		useAVX512 = true
	}
}

// transpose32AVX512 transposes m with each half of the matrix held in one
// ZMM register. The 16-bit stage needs no swizzle: rows r and r+16 already
// share a lane after the load.
func transpose32AVX512(m *Matrix32) {
	hi := archsimd.LoadUint32x16Slice(m[:16])
	lo := archsimd.LoadUint32x16Slice(m[16:])

	hi, lo = mergeAVX512(hi, lo, &stages[0])
	for i := 1; i < len(stages); i++ {
		s := &stages[i]
		hi, lo = swizzlePairAVX512(hi, lo, &s.hi, &s.lo)
		hi, lo = mergeAVX512(hi, lo, s)
	}

	hi, lo = swizzlePairAVX512(hi, lo, &finalHi, &finalLo)
	hi.StoreSlice(m[:16])
	lo.StoreSlice(m[16:])
}

// mergeAVX512 swaps the shift-bit blocks between the rows paired lane by lane.
func mergeAVX512(hi, lo archsimd.Uint32x16, s *stage) (archsimd.Uint32x16, archsimd.Uint32x16) {
	mask := archsimd.BroadcastUint32x16(s.mask)
	newHi := hi.AndNot(mask).Or(lo.AndNot(mask).ShiftAllLeft(s.shift))
	newLo := lo.And(mask).Or(hi.And(mask).ShiftAllRight(s.shift))
	return newHi, newLo
}

// swizzlePairAVX512 builds two vectors from the 32 lanes of hi:lo.
// Cross-register permutes go through a stack buffer, like the other AVX-512
// shuffle helpers.
func swizzlePairAVX512(hi, lo archsimd.Uint32x16, idxHi, idxLo *[16]uint8) (archsimd.Uint32x16, archsimd.Uint32x16) {
	var src [32]uint32
	hi.StoreSlice(src[:16])
	lo.StoreSlice(src[16:])

	var dst [32]uint32
	for i := 0; i < 16; i++ {
		dst[i] = src[idxHi[i]&31]
		dst[16+i] = src[idxLo[i]&31]
	}
	return archsimd.LoadUint32x16Slice(dst[:16]), archsimd.LoadUint32x16Slice(dst[16:])
}
