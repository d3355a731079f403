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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there are no vector kernels to dispatch to, so the level
// stays scalar. The CPU flags are still recorded for diagnostics.

// hasAVX512 reports AVX-512 Foundation support as seen by x/sys/cpu.
var hasAVX512 bool

func init() {
	hasAVX512 = cpu.X86.HasAVX512F

	// Build with GOEXPERIMENT=simd for the AVX-512 kernels.
	setScalarMode()
}

// HasAVX512 returns true if the CPU supports AVX-512 Foundation instructions,
// whether or not this binary was built with kernels that use them.
func HasAVX512() bool {
	return hasAVX512
}
