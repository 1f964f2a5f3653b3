package vflow

import "math"

// The position mapper. Every index owns an equal 1/cellCount slice of the
// normalized position; inside that slice the position moves at a rate
// proportional to the cell's measured length. The viewport itself slides by
// position*viewportLength so that position 1 lines the last cell's end up
// with the viewport's end.

// computeCurrentIndex returns the index anchoring the current position.
// Position 1 yields cellCount.
func (f *Flow) computeCurrentIndex() int {
	return int(f.position * float64(f.cellCount))
}

// computeViewportOffset returns how far the start of the current index lies
// before the viewport start for position p. Cells are laid out starting at
// -computeViewportOffset(p).
func (f *Flow) computeViewportOffset(p float64) float64 {
	p = clamp01(p)
	fractional := p * float64(f.cellCount)
	index := int(fractional)
	fraction := fractional - float64(index)
	pixelOffset := 0.0
	if fraction != 0 {
		pixelOffset = f.CellLength(index) * fraction
	}
	return pixelOffset - f.viewportLength*p
}

// computeOffsetForCell returns the viewport slide at the start of index.
func (f *Flow) computeOffsetForCell(index int) float64 {
	if f.cellCount == 0 {
		return 0
	}
	n := float64(f.cellCount)
	p := clamp(float64(index), 0, n) / n
	return -(f.viewportLength * p)
}

// adjustPositionToIndex moves the position to the start of index.
func (f *Flow) adjustPositionToIndex(index int) {
	if f.cellCount <= 0 {
		f.setPosition(0)
		return
	}
	f.setPosition(float64(index) / float64(f.cellCount))
}

// adjustByPixelAmount moves the position by n pixels.
func (f *Flow) adjustByPixelAmount(n float64) {
	if n == 0 || f.cellCount == 0 {
		return
	}
	f.setPosition(f.positionAfterPixels(f.position, n))
}

// positionAfterPixels returns the position n pixels away from pos. It walks
// one cell at a time and converts the remainder inside the final cell
// through that cell's travel rate. Overshooting either end clamps to 0 or 1.
func (f *Flow) positionAfterPixels(pos, n float64) float64 {
	if n == 0 || f.cellCount == 0 {
		return pos
	}
	forward := n > 0
	count := f.cellCount
	fractional := pos * float64(count)
	index := int(fractional)
	if forward && index == count {
		return pos
	}
	size := f.CellLength(index)
	pixelOffset := size * (fractional - float64(index))

	cellPercent := 1.0 / float64(count)

	start := f.computeOffsetForCell(index)
	end := size + f.computeOffsetForCell(index+1)
	remaining := end - start

	var left float64
	if forward {
		left = n + pixelOffset - f.viewportLength*pos - start
	} else {
		left = -n + end - (pixelOffset - f.viewportLength*pos)
	}

	p := cellPercent * float64(index)
	for left > remaining && ((forward && index < count-1) || (!forward && index > 0)) {
		if forward {
			index++
		} else {
			index--
		}
		left -= remaining
		size = f.CellLength(index)
		start = f.computeOffsetForCell(index)
		end = size + f.computeOffsetForCell(index+1)
		remaining = end - start
		p = cellPercent * float64(index)
	}

	span := math.Abs(end - start)
	switch {
	case span == 0:
		return clamp01(p)
	case left > remaining:
		if forward {
			return 1
		}
		return 0
	case forward:
		return clamp01(p + cellPercent/span*left)
	default:
		return clamp01(p + cellPercent - cellPercent/span*left)
	}
}

// positionForTop returns the position that puts index at the viewport
// start.
func (f *Flow) positionForTop(index int) float64 {
	switch {
	case f.cellCount == 0 || index < 0:
		return 0
	case index >= f.cellCount-1:
		return 1
	}
	p := float64(index) / float64(f.cellCount)
	return f.positionAfterPixels(p, -f.computeOffsetForCell(index))
}

// EstimatedContentLength estimates the total length of all cells along the
// virtual axis from the average length of the live cells.
func (f *Flow) EstimatedContentLength() float64 {
	if f.cellCount == 0 {
		return 0
	}
	if f.cfg.FixedCellSize > 0 {
		return f.cfg.FixedCellSize * float64(f.cellCount)
	}
	sum, n := 0.0, 0
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		if c.Empty() {
			continue
		}
		sum += f.cellLength(c)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * float64(f.cellCount)
}

// PixelOffset converts the position into a pixel offset along the virtual
// axis: position * (content length - viewport length), never negative.
func (f *Flow) PixelOffset() float64 {
	return f.position * math.Max(0, f.EstimatedContentLength()-f.viewportLength)
}
