// Defines the Truck struct and the phases of its load-weigh-travel cycle.

package sim

import "fmt"

// Phase is where a truck currently is in its cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInLoaderQueue
	PhaseLoading
	PhaseInScaleQueue
	PhaseWeighing
	PhaseTraveling
)

var phaseNames = [...]string{
	PhaseIdle:          "idle",
	PhaseInLoaderQueue: "in_loader_queue",
	PhaseLoading:       "loading",
	PhaseInScaleQueue:  "in_scale_queue",
	PhaseWeighing:      "weighing",
	PhaseTraveling:     "traveling",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Truck is one entity of the closed network. Trucks are created when the
// Simulator is built and are never destroyed; only handlers change Phase.
type Truck struct {
	ID    int   // 1-based identifier
	Phase Phase // current cycle phase
}

func (t Truck) String() string {
	return fmt.Sprintf("Truck: (ID: %d, Phase: %s)", t.ID, t.Phase)
}
