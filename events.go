package vflow

// EventType identifies a flow event.
type EventType uint8

const (
	// EventCellCreated fires when the factory produces a new cell.
	EventCellCreated EventType = iota
	// EventCellRecycled fires when a pile cell is rebound to a new index.
	EventCellRecycled
	// EventCellDisposed fires when a cell is destroyed (pile overflow,
	// factory change or RecreateCells).
	EventCellDisposed
	// EventPositionChanged fires when the normalized position changes.
	EventPositionChanged
	// EventLayout fires at the end of every layout pass that touched cells.
	EventLayout
)

var eventTypeNames = [...]string{
	EventCellCreated:     "CellCreated",
	EventCellRecycled:    "CellRecycled",
	EventCellDisposed:    "CellDisposed",
	EventPositionChanged: "PositionChanged",
	EventLayout:          "Layout",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event describes something that happened inside a flow. Fields not relevant
// to the event type are zero.
type Event struct {
	Type     EventType
	CellID   uint32
	Index    int
	Position float64
	// Cells is the number of live cells after a layout pass.
	Cells int
	// Pile is the number of detached cells after a layout pass.
	Pile int
}

// EventSink receives flow events. Events raised during a layout pass are
// delivered after the pass completes, so a sink may call back into the flow.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls fn(e).
func (fn EventSinkFunc) Emit(e Event) { fn(e) }

// SetEventSink installs the receiver of flow events. Nil disables events.
func (f *Flow) SetEventSink(s EventSink) {
	f.sink = s
}

func (f *Flow) emit(e Event) {
	if f.sink == nil {
		return
	}
	if f.inLayout {
		f.pendingEvents = append(f.pendingEvents, e)
		return
	}
	f.sink.Emit(e)
}

func (f *Flow) flushEvents() {
	if len(f.pendingEvents) == 0 {
		return
	}
	events := f.pendingEvents
	f.pendingEvents = nil
	for _, e := range events {
		if f.sink == nil {
			return
		}
		f.sink.Emit(e)
	}
}
