package vflow

import "math"

// goldenRatio keeps a flow at least this wide relative to its preferred
// length when the opposite dimension is known.
const goldenRatio = 0.618033987

// prefSampleCells is how many leading cells are measured for preferred
// sizes.
const prefSampleCells = 10

// PrefWidth returns the preferred width given a height (-1 when
// unconstrained), including the vertical bar.
func (f *Flow) PrefWidth(height float64) float64 {
	w := f.prefLength()
	if f.vertical {
		w = f.prefBreadth(height)
	}
	return w + f.cfg.ScrollBarSize
}

// PrefHeight returns the preferred height given a width (-1 when
// unconstrained), including the horizontal bar.
func (f *Flow) PrefHeight(width float64) float64 {
	h := f.prefBreadth(width)
	if f.vertical {
		h = f.prefLength()
	}
	return h + f.cfg.ScrollBarSize
}

// prefBreadth is the widest of the first cells, at least one measured.
func (f *Flow) prefBreadth(opposite float64) float64 {
	rows := max(1, min(prefSampleCells, f.cellCount))
	breadth := 0.0
	for i := 0; i < rows; i++ {
		breadth = math.Max(breadth, f.CellBreadth(i))
	}
	if opposite > -1 {
		breadth = math.Max(breadth, f.prefLength()*goldenRatio)
	}
	return breadth
}

// prefLength sums the lengths of the first cells.
func (f *Flow) prefLength() float64 {
	sum := 0.0
	rows := min(prefSampleCells, f.cellCount)
	for i := 0; i < rows; i++ {
		sum += f.CellLength(i)
	}
	return sum
}
