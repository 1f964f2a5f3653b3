package vflow

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// ---- debug checks ----------------------------------------------------------

func TestDebugCheckCells_Valid(t *testing.T) {
	f := newTestFlow(t, 100)
	debugCheckCells(f)
}

func TestDebugCheckCells_GapPanics(t *testing.T) {
	f := newTestFlow(t, 100)
	f.cells.Get(5).Y += 3
	expectPanic(t, "gap before index 5", func() { debugCheckCells(f) })
}

func TestDebugCheckCells_IndexPanics(t *testing.T) {
	f := newTestFlow(t, 100)
	f.cells.Get(4).index = 7
	expectPanic(t, "cell index 7 follows 3", func() { debugCheckCells(f) })
}

func TestDebugCheckCells_DuplicatePanics(t *testing.T) {
	f := newTestFlow(t, 100)
	f.cells.AddLast(f.cells.First())
	expectPanic(t, "appears twice", func() { debugCheckCells(f) })
}

func TestDebugCheckCells_LiveAndPiledPanics(t *testing.T) {
	f := newTestFlow(t, 100)
	f.pile.AddLast(f.cells.Get(2))
	expectPanic(t, "both live and piled", func() { debugCheckCells(f) })
}

func TestDebugCheckCells_DisposedPanics(t *testing.T) {
	f := newTestFlow(t, 100)
	f.cells.Get(0).disposed = true
	expectPanic(t, "disposed", func() { debugCheckCells(f) })
}

func TestDebugCheckCoverage_TrailingGap(t *testing.T) {
	f := newTestFlow(t, 100)
	f.cells.RemoveLast()
	expectPanic(t, "cells cover", func() { debugCheckCoverage(f) })
}

func TestDebugCheckCoverage_LeadingGap(t *testing.T) {
	f := newTestFlow(t, 100)
	for i := 0; i < f.cells.Size(); i++ {
		c := f.cells.Get(i)
		f.positionCell(c, f.cellPosition(c)+10)
	}
	expectPanic(t, "cells cover [10,", func() { debugCheckCoverage(f) })
}

func TestDebugLayoutTiming(t *testing.T) {
	f := newTestFlow(t, 100)
	f.SetPosition(0.5)
	out := captureStderr(t, f.Layout)
	if !strings.Contains(out, "[vflow] layout:") || !strings.Contains(out, "cells: 12") {
		t.Errorf("stderr = %q, want layout timing", out)
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	f := newTestFlow(t, 100)
	f.SetDebugMode(false)
	f.SetPosition(0.5)
	if out := captureStderr(t, f.Layout); out != "" {
		t.Errorf("stderr = %q, want nothing", out)
	}
}
