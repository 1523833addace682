package search

import (
	"sync"

	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

type EventType string

const (
	EventFrontier   EventType = "frontier"
	EventCollision  EventType = "collision"
	EventBoundRaise EventType = "bound_raised"
	EventSolution   EventType = "solution"
)

// Event is one observed search step.
type Event struct {
	Type     EventType    `json:"type"`
	Segment  []da.State   `json:"segment,omitempty"`
	Path     [][]da.State `json:"path,omitempty"`
	OldLimit float64      `json:"old_limit,omitempty"`
	NewLimit float64      `json:"new_limit,omitempty"`
}

// EventRecorder keeps every event in memory. Safe for use from one search at a time, readers
// may call Events concurrently.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{events: make([]Event, 0)}
}

func (er *EventRecorder) record(ev Event) {
	er.mu.Lock()
	er.events = append(er.events, ev)
	er.mu.Unlock()
}

func (er *EventRecorder) OnFrontier(segment []da.State) {
	er.record(Event{Type: EventFrontier, Segment: segment})
}

func (er *EventRecorder) OnCollision(segment []da.State) {
	er.record(Event{Type: EventCollision, Segment: segment})
}

func (er *EventRecorder) OnBoundRaised(oldLimit, newLimit float64) {
	er.record(Event{Type: EventBoundRaise, OldLimit: oldLimit, NewLimit: newLimit})
}

func (er *EventRecorder) OnSolution(path [][]da.State) {
	er.record(Event{Type: EventSolution, Path: path})
}

func (er *EventRecorder) Events() []Event {
	er.mu.Lock()
	defer er.mu.Unlock()
	out := make([]Event, len(er.events))
	copy(out, er.events)
	return out
}

// Count returns how many events of type t were recorded.
func (er *EventRecorder) Count(t EventType) int {
	er.mu.Lock()
	defer er.mu.Unlock()
	n := 0
	for _, ev := range er.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// ChannelObserver forwards events to a channel. Events are dropped when the channel is full so
// a slow consumer never stalls the search.
type ChannelObserver struct {
	ch      chan<- Event
	dropped int
}

func NewChannelObserver(ch chan<- Event) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

func (co *ChannelObserver) send(ev Event) {
	select {
	case co.ch <- ev:
	default:
		co.dropped++
	}
}

func (co *ChannelObserver) OnFrontier(segment []da.State) {
	co.send(Event{Type: EventFrontier, Segment: segment})
}

func (co *ChannelObserver) OnCollision(segment []da.State) {
	co.send(Event{Type: EventCollision, Segment: segment})
}

func (co *ChannelObserver) OnBoundRaised(oldLimit, newLimit float64) {
	co.send(Event{Type: EventBoundRaise, OldLimit: oldLimit, NewLimit: newLimit})
}

func (co *ChannelObserver) OnSolution(path [][]da.State) {
	co.send(Event{Type: EventSolution, Path: path})
}

// Dropped is the number of events lost to a full channel. Read it after the search returned.
func (co *ChannelObserver) Dropped() int {
	return co.dropped
}
