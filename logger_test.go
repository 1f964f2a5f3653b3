package vflow

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	f := NewFlow(testConfig())
	f.SetCellFactory(testFactory)
	f.SetCellCount(100)
	f.Resize(300, 300)
	f.Layout()
	f.SetVertical(false)

	out := buf.String()
	for _, want := range []string{
		"vflow: cell factory replaced",
		"vflow: layout",
		"cells=12",
		"vflow: orientation changed",
		"vertical=false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestDeferredLayoutIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	f := NewFlow(testConfig())
	f.SetCellFactory(func(f *Flow) *Cell {
		c := &testContent{flow: f, index: -1}
		c.onUpdate = func(*testContent) { f.RequestLayout() }
		return NewCell(c)
	})
	f.SetCellCount(10)
	f.Resize(300, 300)
	f.Layout()
	if n := strings.Count(buf.String(), "layout requested during layout"); n != 1 {
		t.Errorf("deferred layout logged %d times, want once per pass", n)
	}
}
