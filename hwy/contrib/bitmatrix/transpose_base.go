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

//go:generate go run ../../../cmd/swizzlegen --output zz_swizzle_tables.go --pkg bitmatrix

import "github.com/bitslice/go-bitmatrix/hwy"

// stage is one block-swap step of the transpose.
//
// hi and lo index the 32-lane concatenation of the two current vectors
// (0-15 first vector, 16-31 second). After the swizzle, lane p of the lo
// vector holds the row shift above the row in lane p of the hi vector.
type stage struct {
	mask  uint32 // columns with bit `shift` set
	shift uint64
	hi    [16]uint8
	lo    [16]uint8
}

// BaseTranspose32 transposes m in place with the portable kernel.
//
// It runs the same stage tables as the SIMD kernels and is always
// available, so it serves as their reference.
func BaseTranspose32(m *Matrix32) {
	hi := hwy.LoadUint32x16Slice(m[:16])
	lo := hwy.LoadUint32x16Slice(m[16:])

	for i := range stages {
		s := &stages[i]
		hi, lo = hwy.ConcatSwizzle(hi, lo, &s.hi), hwy.ConcatSwizzle(hi, lo, &s.lo)

		mask := hwy.BroadcastUint32x16(s.mask)
		hi, lo = hi.AndNot(mask).Or(lo.AndNot(mask).ShiftAllLeft(s.shift)),
			lo.And(mask).Or(hi.And(mask).ShiftAllRight(s.shift))
	}

	// hi holds the even rows and lo the odd rows.
	hwy.ConcatSwizzle(hi, lo, &finalHi).StoreSlice(m[:16])
	hwy.ConcatSwizzle(hi, lo, &finalLo).StoreSlice(m[16:])
}
