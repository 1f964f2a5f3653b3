package vflow

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// ---- ScrollPixels ----------------------------------------------------------

func TestScrollPixels(t *testing.T) {
	f := newTestFlow(t, 100)
	if got := f.ScrollPixels(10); !approx(got, 10) {
		t.Errorf("ScrollPixels(10) = %v, want 10", got)
	}
	if f.Position() <= 0 {
		t.Errorf("Position = %v, want > 0", f.Position())
	}
	if c := f.Cells()[0]; !approx(c.Y, -10) {
		t.Errorf("first cell at %v, want -10", c.Y)
	}
	assertCellsContiguous(t, f)
	assertMinimalNumberOfCellsAreUsed(t, f)
}

func TestScrollPixelsBackAndForth(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollPixels(60)
	f.ScrollPixels(-60)
	if !approx(f.Position(), 0) {
		t.Errorf("Position = %v, want 0", f.Position())
	}
	if c := f.Cells()[0]; c.Index() != 0 || !approx(c.Y, 0) {
		t.Errorf("first cell = index %d at %v, want index 0 at 0", c.Index(), c.Y)
	}
}

func TestScrollPixelsAcrossWideCell(t *testing.T) {
	f := newTestFlow(t, 100)
	for i := 0; i < 40; i++ {
		f.ScrollPixels(23)
		assertCellsContiguous(t, f)
	}
	if f.MaxPrefBreadth() != wideBreadth {
		t.Errorf("MaxPrefBreadth = %v, want %v", f.MaxPrefBreadth(), wideBreadth)
	}
}

func TestScrollPixelsAtEdgesReturnsZero(t *testing.T) {
	f := newTestFlow(t, 100)
	if got := f.ScrollPixels(-10); got != 0 {
		t.Errorf("ScrollPixels(-10) at start = %v, want 0", got)
	}
	f.SetPosition(1)
	f.Layout()
	if got := f.ScrollPixels(10); got != 0 {
		t.Errorf("ScrollPixels(10) at end = %v, want 0", got)
	}
}

func TestScrollPixelsWithoutLengthBarReturnsZero(t *testing.T) {
	f := newTestFlow(t, 5)
	if got := f.ScrollPixels(10); got != 0 {
		t.Errorf("ScrollPixels = %v, want 0", got)
	}
	if f.Position() != 0 {
		t.Errorf("Position = %v, want 0", f.Position())
	}
}

func TestScrollPixelsPastEndStopsOnLastCell(t *testing.T) {
	f := newTestFlow(t, 20)
	f.ScrollPixels(10_000)
	if f.Position() != 1 {
		t.Errorf("Position = %v, want 1", f.Position())
	}
	last := f.LastVisibleCell()
	if last == nil || last.Index() != 19 {
		t.Fatalf("last visible = %v, want index 19", last)
	}
	if !approx(last.Y+last.Height, f.ViewportLength()) {
		t.Errorf("last cell ends at %v, want %v", last.Y+last.Height, f.ViewportLength())
	}
}

func TestScrollPixelsRunsPendingLayout(t *testing.T) {
	f := NewFlow(testConfig())
	f.SetCellFactory(testFactory)
	f.SetCellCount(100)
	f.Resize(300, 300)
	if got := f.ScrollPixels(10); !approx(got, 10) {
		t.Errorf("ScrollPixels before first layout = %v, want 10", got)
	}
}

func TestScrollPixelsDuringLayoutPanics(t *testing.T) {
	f := NewFlow(testConfig())
	f.SetCellFactory(func(f *Flow) *Cell {
		c := &testContent{flow: f, index: -1}
		c.onUpdate = func(*testContent) { f.ScrollPixels(1) }
		return NewCell(c)
	})
	f.SetCellCount(10)
	f.Resize(300, 300)
	expectPanic(t, "during layout", f.Layout)
}

// ---- index scrolling -------------------------------------------------------

func TestScrollToVisibleCellDoesNothing(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollTo(5)
	if f.Position() != 0 {
		t.Errorf("Position = %v, want 0", f.Position())
	}
}

func TestScrollToNextCell(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollTo(12)
	c := f.VisibleCell(12)
	if c == nil {
		t.Fatal("index 12 should be realized")
	}
	if end := c.Y + c.Height; !approx(end, f.ViewportLength()) {
		t.Errorf("index 12 ends at %v, want %v", end, f.ViewportLength())
	}
	if first := f.Cells()[0]; first.Index() != 1 || !approx(first.Y, 0) {
		t.Errorf("first cell = index %d at %v, want index 1 at 0", first.Index(), first.Y)
	}
	assertCellsContiguous(t, f)
}

func TestScrollToPreviousCell(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToTop(40)
	f.Layout()
	f.ScrollTo(39)
	c := f.VisibleCell(39)
	if c == nil {
		t.Fatal("index 39 should be realized")
	}
	if !approx(c.Y, 0) {
		t.Errorf("index 39 starts at %v, want 0", c.Y)
	}
	assertCellsContiguous(t, f)
}

func TestScrollToFarIndex(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollTo(50)
	f.Layout()
	c := f.VisibleCell(50)
	if c == nil {
		t.Fatal("index 50 should be realized")
	}
	if c.Y < 0 || c.Y+c.Height > f.ViewportLength() {
		t.Errorf("index 50 spans [%v, %v], want inside the viewport", c.Y, c.Y+c.Height)
	}
}

func TestScrollToClampsIndex(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollTo(1000)
	f.Layout()
	if f.VisibleCell(99) == nil {
		t.Error("index 99 should be realized")
	}
	f.ScrollTo(-5)
	f.Layout()
	if f.VisibleCell(0) == nil {
		t.Error("index 0 should be realized")
	}
}

func TestScrollToTop(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToTop(50)
	f.Layout()
	c := f.VisibleCell(50)
	if c == nil {
		t.Fatal("index 50 should be realized")
	}
	if !approx(c.Y, 0) {
		t.Errorf("index 50 starts at %v, want 0", c.Y)
	}
	assertMinimalNumberOfCellsAreUsed(t, f)
}

func TestScrollToTopExtremes(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToTop(99)
	if f.Position() != 1 {
		t.Errorf("ScrollToTop(99): Position = %v, want 1", f.Position())
	}
	f.ScrollToTop(-1)
	if f.Position() != 0 {
		t.Errorf("ScrollToTop(-1): Position = %v, want 0", f.Position())
	}
}

func TestScrollToTopCell(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToTopCell(f.VisibleCell(4))
	c := f.VisibleCell(4)
	if c == nil || !approx(c.Y, 0) {
		t.Fatalf("index 4 = %v, want at 0", c)
	}
}

func TestScrollToBottomCell(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToTop(20)
	f.Layout()
	f.ScrollToBottomCell(f.VisibleCell(25))
	c := f.VisibleCell(25)
	if c == nil {
		t.Fatal("index 25 should be realized")
	}
	if end := c.Y + c.Height; !approx(end, f.ViewportLength()) {
		t.Errorf("index 25 ends at %v, want %v", end, f.ViewportLength())
	}
}

func TestScrollToCellPartiallyHidden(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollPixels(10)
	f.ScrollToCell(f.VisibleCell(0))
	if c := f.VisibleCell(0); c == nil || !approx(c.Y, 0) {
		t.Errorf("index 0 = %v, want at 0", c)
	}
}

func TestScrollToNilCellIsNoop(t *testing.T) {
	f := newTestFlow(t, 100)
	f.ScrollToCell(nil)
	f.ScrollToTopCell(nil)
	f.ScrollToBottomCell(nil)
	if f.Position() != 0 {
		t.Errorf("Position = %v, want 0", f.Position())
	}
}

// ---- animation -------------------------------------------------------------

func TestAnimateTo(t *testing.T) {
	f := newTestFlow(t, 100)
	f.AnimateTo(1, 1.0, ease.Linear)
	if !f.IsAnimating() {
		t.Fatal("expected animation to be running")
	}
	f.Update(0.5)
	if p := f.Position(); p <= 0.4 || p >= 0.6 {
		t.Errorf("Position at half time = %v, want ~0.5", p)
	}
	if f.NeedsLayout() {
		t.Error("Update should run the layout")
	}
	f.Update(0.5)
	if f.IsAnimating() {
		t.Error("animation should be done after the full duration")
	}
	if f.Position() != 1 {
		t.Errorf("Position = %v, want 1", f.Position())
	}
	if last := f.LastVisibleCell(); last == nil || last.Index() != 99 {
		t.Errorf("last visible = %v, want index 99", last)
	}
}

func TestAnimateToDefaultEase(t *testing.T) {
	f := newTestFlow(t, 100)
	f.AnimateTo(0.5, 0.2, nil)
	for i := 0; i < 4; i++ {
		f.Update(0.1)
	}
	if f.IsAnimating() {
		t.Error("animation should be done")
	}
	if f.Position() != 0.5 {
		t.Errorf("Position = %v, want 0.5", f.Position())
	}
}

func TestAnimateToIndex(t *testing.T) {
	f := newTestFlow(t, 100)
	f.AnimateToIndex(50, 0.5, ease.OutCubic)
	f.Update(0.25)
	f.Update(0.25)
	c := f.VisibleCell(50)
	if c == nil || !approx(c.Y, 0) {
		t.Errorf("index 50 = %v, want at 0", c)
	}
}

func TestSetPositionCancelsAnimation(t *testing.T) {
	f := newTestFlow(t, 100)
	f.AnimateTo(1, 1.0, nil)
	f.SetPosition(0.3)
	if f.IsAnimating() {
		t.Error("SetPosition should cancel the animation")
	}
	f.Update(0.5)
	if f.Position() != 0.3 {
		t.Errorf("Position = %v, want 0.3", f.Position())
	}
}

func TestScrollPixelsCancelsAnimation(t *testing.T) {
	f := newTestFlow(t, 100)
	f.AnimateTo(1, 1.0, nil)
	f.ScrollPixels(5)
	if f.IsAnimating() {
		t.Error("ScrollPixels should cancel the animation")
	}
}
