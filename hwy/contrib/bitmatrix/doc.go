// Package bitmatrix provides SIMD transposition of 32x32 bit matrices.
// Such transposes are a building block of bit-sliced algorithms: block-cipher
// bit-slicing, syndrome computation for error-correcting codes, and Boolean
// matrix algebra on packed bitsets.
//
// # Representation
//
// A Matrix32 is 32 uint32 rows. Bit j (LSB = 0) of row i is the entry at
// row i, column j. Every bit pattern is a valid matrix.
//
// # Algorithm
//
// The classical recursive transpose swaps, for k = 16, 8, 4, 2, 1, the k-bit
// block of row r at the columns with bit k set against the k-bit block of row
// r+k at the columns with bit k clear. The scalar version loops over the 16
// row pairs of every stage. Here the 32 rows live in two 16-lane vectors
// and each stage handles all 16 pairs with one masked merge:
//
//  1. A constant two-vector swizzle brings row r into lane p of the first
//     vector and row r+k into lane p of the second.
//  2. With mask_k selecting the columns with bit k set,
//     first' = (first &^ mask) | ((second &^ mask) << k) and
//     second' = (second & mask) | ((first & mask) >> k).
//
// After the k = 1 stage the first vector holds the even rows and the second
// the odd rows. A final interleave restores ascending row order.
//
// The swizzle tables are generated by cmd/swizzlegen and checked in.
//
// # Example Usage
//
//	import "github.com/bitslice/go-bitmatrix/hwy/contrib/bitmatrix"
//
//	var m bitmatrix.Matrix32
//	m[5] = 1 << 3
//	bitmatrix.Transpose32(&m) // m[3] == 1 << 5
//
// # Build Requirements
//
// The AVX-512 kernel requires:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX-512 support
//
// On every other target the portable kernel is used. HWY_NO_SIMD forces it
// everywhere.
package bitmatrix
