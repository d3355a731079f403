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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type kernel struct {
	name string
	fn   func(*Matrix32)
}

// kernels lists every transpose implementation available on this build.
// Architecture-specific test files append to it.
var kernels = []kernel{
	{"base", BaseTranspose32},
	{"dispatch", Transpose32},
}

// naiveTranspose is the bit-by-bit definition of the transpose.
func naiveTranspose(m Matrix32) Matrix32 {
	var t Matrix32
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if m[j]>>uint(i)&1 == 1 {
				t[i] |= 1 << uint(j)
			}
		}
	}
	return t
}

func randomMatrix(rng *rand.Rand) Matrix32 {
	var m Matrix32
	for i := range m {
		m[i] = rng.Uint32()
	}
	return m
}

func transposed(k kernel, m Matrix32) Matrix32 {
	k.fn(&m)
	return m
}

func TestTransposeFixedPoints(t *testing.T) {
	var ones Matrix32
	for i := range ones {
		ones[i] = 0xFFFFFFFF
	}
	cases := map[string]Matrix32{
		"zero":     {},
		"ones":     ones,
		"identity": Identity32(),
	}
	for _, k := range kernels {
		for name, m := range cases {
			require.Equal(t, m, transposed(k, m), "%s: %s", k.name, name)
		}
	}
}

func TestTransposeSingleBit(t *testing.T) {
	var m, want Matrix32
	m[5] = 1 << 3
	want[3] = 1 << 5
	for _, k := range kernels {
		require.Equal(t, want, transposed(k, m), k.name)
	}
}

func TestTransposeRowToColumn(t *testing.T) {
	var m Matrix32
	m[0] = 0b11
	for _, k := range kernels {
		got := transposed(k, m)
		require.True(t, got.Bit(0, 0), k.name)
		require.True(t, got.Bit(1, 0), k.name)

		got.SetBit(0, 0, false)
		got.SetBit(1, 0, false)
		require.Equal(t, Matrix32{}, got, "%s: unexpected bits set", k.name)
	}
}

// Every single-bit matrix maps to the single bit at the mirrored position.
func TestTransposeAllSingleBits(t *testing.T) {
	for _, k := range kernels {
		for i := 0; i < Size; i++ {
			for j := 0; j < Size; j++ {
				var m, want Matrix32
				m.SetBit(i, j, true)
				want.SetBit(j, i, true)
				got := transposed(k, m)
				if got != want {
					t.Fatalf("%s: bit (%d,%d) did not move to (%d,%d):\n%s", k.name, i, j, j, i, got)
				}
			}
		}
	}
}

func TestTransposeFullRowAndColumn(t *testing.T) {
	for _, k := range kernels {
		for r := 0; r < Size; r++ {
			var row Matrix32
			row[r] = 0xFFFFFFFF
			var col Matrix32
			for i := range col {
				col[i] = 1 << uint(r)
			}
			require.Equal(t, col, transposed(k, row), "%s: row %d", k.name, r)
			require.Equal(t, row, transposed(k, col), "%s: column %d", k.name, r)
		}
	}
}

func TestTransposeBitCorrespondence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		m := randomMatrix(rng)
		want := naiveTranspose(m)
		for _, k := range kernels {
			got := transposed(k, m)
			if got != want {
				t.Fatalf("%s: mismatch for\n%s\ngot\n%s\nwant\n%s", k.name, m, got, want)
			}
			for i := 0; i < Size; i++ {
				for j := 0; j < Size; j++ {
					if got.Bit(i, j) != m.Bit(j, i) {
						t.Fatalf("%s: T[%d].bit(%d) != M[%d].bit(%d)", k.name, i, j, j, i)
					}
				}
			}
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 500 {
		m := randomMatrix(rng)
		for _, k := range kernels {
			require.Equal(t, m, transposed(k, transposed(k, m)), k.name)
		}
	}
}

func TestTransposeLinearOverXor(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		a, b := randomMatrix(rng), randomMatrix(rng)
		for _, k := range kernels {
			require.Equal(t,
				transposed(k, a).Xor(transposed(k, b)),
				transposed(k, a.Xor(b)),
				k.name)
		}
	}
}

func TestKernelsAgree(t *testing.T) {
	t.Logf("dispatching to %s", KernelName())
	rng := rand.New(rand.NewPCG(7, 8))
	for range 1000 {
		m := randomMatrix(rng)
		want := transposed(kernels[0], m)
		for _, k := range kernels[1:] {
			require.Equal(t, want, transposed(k, m), k.name)
		}
	}
}

func TestTransposeValueLeavesReceiver(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	m := randomMatrix(rng)
	orig := m
	got := m.Transpose()
	require.Equal(t, orig, m)
	require.Equal(t, naiveTranspose(orig), got)
}

func TestTransposeNoAllocs(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	m := randomMatrix(rng)
	for _, k := range kernels {
		allocs := testing.AllocsPerRun(100, func() { k.fn(&m) })
		require.Zero(t, allocs, k.name)
	}
	allocs := testing.AllocsPerRun(100, func() { m = m.Transpose() })
	require.Zero(t, allocs, "Matrix32.Transpose")
}

func TestTransposeConcurrent(t *testing.T) {
	const workers = 8
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(w), 13))
			for range 200 {
				m := randomMatrix(rng)
				want := naiveTranspose(m)
				Transpose32(&m)
				if m != want {
					return fmt.Errorf("worker %d: mismatch", w)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkTranspose32(b *testing.B) {
	rng := rand.New(rand.NewPCG(14, 15))
	m := randomMatrix(rng)
	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(Size * 4))
			for b.Loop() {
				k.fn(&m)
			}
		})
	}
	b.Run("naive", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(Size * 4))
		for b.Loop() {
			m = naiveTranspose(m)
		}
	})
}
