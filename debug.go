package vflow

import (
	"fmt"
	"math"
)

// SetDebugMode enables per-pass invariant checks and timing output on
// stderr. A violated invariant panics with a descriptive message.
func (f *Flow) SetDebugMode(enabled bool) {
	f.debug = enabled
}

// contiguityTolerance absorbs float drift when comparing cell edges.
const contiguityTolerance = 0.01

// debugCheckCells panics unless the live cells are bound to consecutive
// ascending indices, laid out without gaps, and each appears once.
func debugCheckCells(f *Flow) {
	seen := make(map[*Cell]struct{}, f.cells.Size())
	var prev *Cell
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		if _, dup := seen[c]; dup {
			panic(fmt.Sprintf("vflow debug: cell %d appears twice in the live cells", c.ID))
		}
		seen[c] = struct{}{}
		if c.disposed {
			panic(fmt.Sprintf("vflow debug: disposed cell %d is live", c.ID))
		}
		if prev != nil {
			if c.index != prev.index+1 {
				panic(fmt.Sprintf("vflow debug: cell index %d follows %d", c.index, prev.index))
			}
			want := f.cellPosition(prev) + f.cellLength(prev)
			if math.Abs(f.cellPosition(c)-want) > contiguityTolerance {
				panic(fmt.Sprintf("vflow debug: gap before index %d: starts at %v, previous ends at %v",
					c.index, f.cellPosition(c), want))
			}
		}
		prev = c
	}
	for i := 0; i < f.pile.Size(); i++ {
		if _, live := seen[f.pile.Get(i)]; live {
			panic(fmt.Sprintf("vflow debug: cell %d is both live and piled", f.pile.Get(i).ID))
		}
	}
	debugCheckCoverage(f)
}

// debugCheckCoverage panics when the live cells leave part of the viewport
// uncovered.
func debugCheckCoverage(f *Flow) {
	if f.cells.IsEmpty() || f.viewportLength <= 0 {
		return
	}
	first, last := f.cells.First(), f.cells.Last()
	start := f.cellPosition(first)
	end := f.cellPosition(last) + f.cellLength(last)
	if start > contiguityTolerance || end < f.viewportLength-contiguityTolerance {
		panic(fmt.Sprintf("vflow debug: cells cover [%v, %v] of a %v viewport",
			start, end, f.viewportLength))
	}
}
