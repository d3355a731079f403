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

package main

import "fmt"

const (
	// matrixRows is the side of the bit matrix and the lane count of the two
	// vectors together.
	matrixRows = 32

	// vectorLanes is the lane count of one vector.
	vectorLanes = matrixRows / 2
)

// StagePlan is one block-swap stage: the mask and shift of the merge and the
// swizzle that lines up the rows it pairs.
type StagePlan struct {
	Mask  uint32
	Shift int
	Hi    [vectorLanes]int
	Lo    [vectorLanes]int
}

// Plan is the complete set of transpose tables.
type Plan struct {
	Stages  []StagePlan
	FinalHi [vectorLanes]int
	FinalLo [vectorLanes]int
}

// layout maps each of the 32 lanes of hi:lo to the row it holds.
type layout [matrixRows]int

// positions inverts l: the lane of every row.
func (l *layout) positions() [matrixRows]int {
	var pos [matrixRows]int
	for lane, row := range l {
		pos[row] = lane
	}
	return pos
}

// blockMask selects the columns whose index has bit k set.
func blockMask(k int) uint32 {
	var m uint32
	for c := 0; c < matrixRows; c++ {
		if c&k != 0 {
			m |= 1 << uint(c)
		}
	}
	return m
}

// BuildPlan derives the stage tables by following the row held in every lane.
//
// At stage k the hi vector receives, in ascending order, the rows with bit k
// clear; lane p of the lo vector receives the row k above lane p of hi. The
// merge leaves every row in the lane it was swizzled to. After the last stage
// hi holds the even rows and lo the odd ones, and the final tables interleave
// them back into ascending order.
func BuildPlan() (*Plan, error) {
	var cur layout
	for i := range cur {
		cur[i] = i
	}

	p := &Plan{}
	for k := vectorLanes; k >= 1; k /= 2 {
		pos := cur.positions()
		sp := StagePlan{Mask: blockMask(k), Shift: k}
		var next layout
		lane := 0
		for r := 0; r < matrixRows; r++ {
			if r&k != 0 {
				continue
			}
			sp.Hi[lane] = pos[r]
			sp.Lo[lane] = pos[r+k]
			next[lane] = r
			next[vectorLanes+lane] = r + k
			lane++
		}
		if err := checkPermutation(sp.Hi, sp.Lo); err != nil {
			return nil, fmt.Errorf("stage %d: %w", k, err)
		}
		p.Stages = append(p.Stages, sp)
		cur = next
	}

	pos := cur.positions()
	for lane := 0; lane < vectorLanes; lane++ {
		p.FinalHi[lane] = pos[lane]
		p.FinalLo[lane] = pos[vectorLanes+lane]
	}
	if err := checkPermutation(p.FinalHi, p.FinalLo); err != nil {
		return nil, fmt.Errorf("final interleave: %w", err)
	}
	return p, nil
}

// checkPermutation verifies that hi and lo together use every source lane
// exactly once.
func checkPermutation(hi, lo [vectorLanes]int) error {
	var seen [matrixRows]bool
	for _, idx := range append(hi[:], lo[:]...) {
		if idx < 0 || idx >= matrixRows {
			return fmt.Errorf("lane index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("lane %d used twice", idx)
		}
		seen[idx] = true
	}
	return nil
}
