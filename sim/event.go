package sim

import "fmt"

// EventKind is the closed set of events that drive the truck cycle.
type EventKind int

const (
	// ArriveAtLoaderQueue: a truck reaches the loader area (from travel or at start).
	ArriveAtLoaderQueue EventKind = iota
	// EndLoading: a loader finishes loading a truck.
	EndLoading
	// EndWeighing: the scale finishes weighing a truck.
	EndWeighing
)

func (k EventKind) String() string {
	switch k {
	case ArriveAtLoaderQueue:
		return "ArriveAtLoaderQueue"
	case EndLoading:
		return "EndLoading"
	case EndWeighing:
		return "EndWeighing"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an immutable scheduled occurrence for one truck.
// The FEL attaches an insertion sequence number when it is scheduled.
type Event struct {
	Time    float64   // scheduled simulation time
	Kind    EventKind // which handler consumes it
	TruckID int       // 1-based truck identifier

	seq uint64 // insertion order, set by EventQueue.Schedule
}

// Timestamp returns the scheduled time of the event.
func (e Event) Timestamp() float64 {
	return e.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%s(truck %d @ %.2f)", e.Kind, e.TruckID, e.Time)
}
