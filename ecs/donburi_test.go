package ecs

import (
	"testing"

	"github.com/phanxgames/vflow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type rowContent struct{ index int }

func (r *rowContent) UpdateIndex(i int)          { r.index = i }
func (r *rowContent) PrefWidth(float64) float64  { return 100 }
func (r *rowContent) PrefHeight(float64) float64 { return 25 }

func newTestFlow(count int) *vflow.Flow {
	f := vflow.NewFlow(vflow.DefaultConfig())
	f.SetCellFactory(func(*vflow.Flow) *vflow.Cell {
		return vflow.NewCell(&rowContent{index: -1})
	})
	f.SetCellCount(count)
	f.Resize(300, 300)
	return f
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []vflow.Event
	FlowEventType.Subscribe(world, func(w donburi.World, e vflow.Event) {
		received = append(received, e)
	})

	sink.Emit(vflow.Event{Type: vflow.EventCellCreated, CellID: 7, Index: 3})
	sink.Emit(vflow.Event{Type: vflow.EventPositionChanged, Position: 0.5})

	// Queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	FlowEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != vflow.EventCellCreated || e.CellID != 7 || e.Index != 3 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != vflow.EventPositionChanged || e.Position != 0.5 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FlowLayout(t *testing.T) {
	world := donburi.NewWorld()
	f := newTestFlow(100)
	f.SetEventSink(NewDonburiSink(world))

	created := 0
	layouts := 0
	FlowEventType.Subscribe(world, func(w donburi.World, e vflow.Event) {
		switch e.Type {
		case vflow.EventCellCreated:
			created++
		case vflow.EventLayout:
			layouts++
		}
	})

	f.Layout()
	events.ProcessAllEvents(world)

	if created != len(f.Cells()) {
		t.Errorf("created = %d, want %d", created, len(f.Cells()))
	}
	if layouts != 1 {
		t.Errorf("layouts = %d, want 1", layouts)
	}
}

func TestUpdateFlows(t *testing.T) {
	world := donburi.NewWorld()
	a := newTestFlow(100)
	b := newTestFlow(5)

	for _, f := range []*vflow.Flow{a, b} {
		entry := world.Entry(world.Create(FlowComponent))
		FlowComponent.SetValue(entry, FlowData{Flow: f})
	}
	// An entity without a flow is skipped.
	world.Create(FlowComponent)

	UpdateFlows(world, 1.0/60)

	if a.NeedsLayout() || b.NeedsLayout() {
		t.Error("flows should be laid out after UpdateFlows")
	}
	if len(a.Cells()) == 0 || len(b.Cells()) == 0 {
		t.Error("flows should have live cells after UpdateFlows")
	}
}
