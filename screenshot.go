package vflow

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// shotRequest is a capture asked for by a script step, tagged with the
// flow state at the time of the request.
type shotRequest struct {
	label    string
	first    int
	position float64
}

// screenshotQueue collects captures to take at the end of the next Draw.
type screenshotQueue struct {
	dir      string
	requests []shotRequest
	taken    int
}

// add queues a capture of f labeled label.
func (q *screenshotQueue) add(label string, f *Flow) {
	r := shotRequest{label: label, first: -1, position: f.Position()}
	if c := f.FirstVisibleCell(); c != nil {
		r.first = c.Index()
	}
	q.requests = append(q.requests, r)
}

func (q *screenshotQueue) pending() int { return len(q.requests) }

// fileName is "<stamp>_<seq>_<label>_i<first>.png"; first is the index of
// the first realized cell, or "none".
func (q *screenshotQueue) fileName(stamp string, r shotRequest) string {
	first := "none"
	if r.first >= 0 {
		first = strconv.Itoa(r.first)
	}
	return fmt.Sprintf("%s_%03d_%s_i%s.png", stamp, q.taken, labelSlug(r.label), first)
}

// flush reads the rendered frame once and writes it for every queued
// request.
func (q *screenshotQueue) flush(screen *ebiten.Image) {
	if len(q.requests) == 0 {
		return
	}
	defer func() { q.requests = q.requests[:0] }()
	if err := os.MkdirAll(q.dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[vflow] screenshot: mkdir %s: %v\n", q.dir, err)
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, r := range q.requests {
		path := filepath.Join(q.dir, q.fileName(stamp, r))
		q.taken++
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[vflow] screenshot: %v\n", err)
			continue
		}
		Logger().Debug("vflow: screenshot", "path", path, "position", r.position)
	}
}

// readNRGBA reads the pixels of src as straight-alpha NRGBA.
func readNRGBA(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, bl, a
	}
	return img
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// writePNG encodes img next to path and renames it into place, so a reader
// never sees a partial file.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shot-*.png")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := pngEncoder.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// labelSlug lowercases label and joins its alphanumeric runs with '-'.
// Labels with no alphanumerics become "shot".
func labelSlug(label string) string {
	words := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "shot"
	}
	return strings.Join(words, "-")
}
