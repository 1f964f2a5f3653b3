package vflow

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLabelSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"top", "top"},
		{"After Wheel", "after-wheel"},
		{"pos.50", "pos-50"},
		{"  scrolled   to end ", "scrolled-to-end"},
		{"a/b\\c", "a-b-c"},
		{"", "shot"},
		{"--", "shot"},
	}
	for _, tt := range tests {
		if got := labelSlug(tt.in); got != tt.want {
			t.Errorf("labelSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueRecordsFlowState(t *testing.T) {
	f := newTestFlow(t, 100)
	var q screenshotQueue
	q.add("top", f)
	f.ScrollToTop(40)
	f.Layout()
	q.add("middle", f)

	if q.pending() != 2 {
		t.Fatalf("pending = %d, want 2", q.pending())
	}
	if r := q.requests[0]; r.first != 0 || r.position != 0 {
		t.Errorf("first request = %+v, want index 0 at position 0", r)
	}
	if r := q.requests[1]; r.first != 40 || r.position != f.Position() {
		t.Errorf("second request = %+v, want index 40 at position %v", r, f.Position())
	}
}

func TestScreenshotFileName(t *testing.T) {
	q := screenshotQueue{taken: 7}
	got := q.fileName("20260101_120000", shotRequest{label: "After Wheel", first: 12})
	if want := "20260101_120000_007_after-wheel_i12.png"; got != want {
		t.Errorf("fileName = %q, want %q", got, want)
	}
	got = q.fileName("s", shotRequest{label: "empty", first: -1})
	if want := "s_007_empty_inone.png"; got != want {
		t.Errorf("fileName = %q, want %q", got, want)
	}
}

func TestScreenshotFlushEmptyIsNoop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	q := screenshotQueue{dir: dir}
	q.flush(nil)
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("flush with no requests should not create the directory")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	fh, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	got, err := png.Decode(fh)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := got.At(1, 1).RGBA(); r != 0xffff {
		t.Errorf("pixel red = %x, want ffff", r)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir holds %d files, want only out.png", len(entries))
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
