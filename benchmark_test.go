package vflow

import "testing"

func newBenchFlow(b *testing.B, count int) *Flow {
	b.Helper()
	f := NewFlow(testConfig())
	f.SetCellFactory(testFactory)
	f.SetCellCount(count)
	f.Resize(300, 900)
	f.Layout()
	return f
}

func BenchmarkLayoutUnchanged(b *testing.B) {
	f := newBenchFlow(b, 1_000_000)
	b.ReportAllocs()
	for b.Loop() {
		f.RequestLayout()
		f.Layout()
	}
}

func BenchmarkLayoutJump(b *testing.B) {
	f := newBenchFlow(b, 1_000_000)
	p := 0.0
	b.ReportAllocs()
	for b.Loop() {
		p += 0.001
		if p > 1 {
			p = 0
		}
		f.SetPosition(p)
		f.Layout()
	}
}

func BenchmarkScrollPixels(b *testing.B) {
	f := newBenchFlow(b, 1_000_000)
	dir := 13.0
	b.ReportAllocs()
	for b.Loop() {
		if f.ScrollPixels(dir) == 0 {
			dir = -dir
		}
	}
}
