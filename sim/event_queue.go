package sim

import "container/heap"

// EventQueue is the future event list: a binary heap ordered by
// timestamp, then by insertion order so that simultaneous events are
// processed in the order they were scheduled.
type EventQueue struct {
	events  eventHeap
	nextSeq uint64
}

// eventHeap implements heap.Interface.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

// Schedule inserts ev, stamping it with the next insertion sequence number.
func (q *EventQueue) Schedule(ev Event) {
	ev.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.events, ev)
}

// PopNext removes and returns the earliest event. ok is false when the queue is empty.
func (q *EventQueue) PopNext() (ev Event, ok bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.events).(Event), true
}

// Peek returns the earliest event without removing it.
func (q *EventQueue) Peek() (ev Event, ok bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Pending returns a copy of the pending events in no particular order.
func (q *EventQueue) Pending() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}
