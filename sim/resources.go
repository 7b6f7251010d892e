package sim

import "fmt"

// ResourceState tracks loader and scale occupancy and their wait-lists.
// Queue lengths are derived from the wait-lists, so they cannot drift apart.
type ResourceState struct {
	LoaderCapacity int
	ScaleCapacity  int

	LoadersBusy int
	ScalesBusy  int

	LoaderQueue *TruckQueue
	ScaleQueue  *TruckQueue
}

// NewResourceState creates an idle resource state with the given capacities.
func NewResourceState(loaderCapacity, scaleCapacity int) *ResourceState {
	return &ResourceState{
		LoaderCapacity: loaderCapacity,
		ScaleCapacity:  scaleCapacity,
		LoaderQueue:    &TruckQueue{},
		ScaleQueue:     &TruckQueue{},
	}
}

// LoaderQueueLen returns the number of trucks waiting for a loader.
func (rs *ResourceState) LoaderQueueLen() int { return rs.LoaderQueue.Len() }

// ScaleQueueLen returns the number of trucks waiting for the scale.
func (rs *ResourceState) ScaleQueueLen() int { return rs.ScaleQueue.Len() }

// LoaderAvailable reports whether a loader is free.
func (rs *ResourceState) LoaderAvailable() bool { return rs.LoadersBusy < rs.LoaderCapacity }

// ScaleAvailable reports whether a scale is free.
func (rs *ResourceState) ScaleAvailable() bool { return rs.ScalesBusy < rs.ScaleCapacity }

// CheckInvariants verifies capacity bounds, that every truck's phase agrees
// with the wait-lists and busy counters, and that no truck is lost.
func (rs *ResourceState) CheckInvariants(trucks []*Truck) error {
	if rs.LoadersBusy < 0 || rs.LoadersBusy > rs.LoaderCapacity {
		return fmt.Errorf("loaders busy %d outside [0, %d]", rs.LoadersBusy, rs.LoaderCapacity)
	}
	if rs.ScalesBusy < 0 || rs.ScalesBusy > rs.ScaleCapacity {
		return fmt.Errorf("scales busy %d outside [0, %d]", rs.ScalesBusy, rs.ScaleCapacity)
	}

	counts := make(map[Phase]int, len(phaseNames))
	for _, t := range trucks {
		counts[t.Phase]++
		inLoaderQ := rs.LoaderQueue.Contains(t.ID)
		inScaleQ := rs.ScaleQueue.Contains(t.ID)
		if inLoaderQ && inScaleQ {
			return fmt.Errorf("truck %d is in both wait-lists", t.ID)
		}
		if inLoaderQ != (t.Phase == PhaseInLoaderQueue) {
			return fmt.Errorf("truck %d phase %s disagrees with loader queue %s", t.ID, t.Phase, rs.LoaderQueue)
		}
		if inScaleQ != (t.Phase == PhaseInScaleQueue) {
			return fmt.Errorf("truck %d phase %s disagrees with scale queue %s", t.ID, t.Phase, rs.ScaleQueue)
		}
	}
	if counts[PhaseLoading] != rs.LoadersBusy {
		return fmt.Errorf("%d trucks loading but %d loaders busy", counts[PhaseLoading], rs.LoadersBusy)
	}
	if counts[PhaseWeighing] != rs.ScalesBusy {
		return fmt.Errorf("%d trucks weighing but %d scales busy", counts[PhaseWeighing], rs.ScalesBusy)
	}
	if rs.LoaderQueueLen()+rs.ScaleQueueLen() != counts[PhaseInLoaderQueue]+counts[PhaseInScaleQueue] {
		return fmt.Errorf("queue lengths (%d, %d) disagree with phase counts", rs.LoaderQueueLen(), rs.ScaleQueueLen())
	}
	return nil
}
