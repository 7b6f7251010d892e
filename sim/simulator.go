// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dumptruck-sim/dumptruck-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state, and the event loop.
// A Simulator runs exactly once; build a new one for every run.
type Simulator struct {
	Clock   float64
	Horizon float64
	Config  SimConfig

	// EventQueue is the future event list.
	EventQueue *EventQueue
	Resources  *ResourceState
	// Trucks is indexed by ID-1.
	Trucks []*Truck
	Stats  *Accumulator
	Log    *trace.EventLog

	// AfterEvent, if set, is called after each event has been dispatched.
	AfterEvent func(sim *Simulator, ev Event)

	loading  CumulativeTable
	weighing CumulativeTable
	travel   CumulativeTable
	rng      RandomSource

	eventsProcessed    int
	cyclesCompleted    int
	peakLoaderQueueLen int
	peakScaleQueueLen  int
	hasRun             bool
}

// NewSimulator validates cfg, builds the cumulative tables and places the
// trucks in their initial state. All input errors surface here, before any
// event is processed.
func NewSimulator(cfg SimConfig, rng RandomSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source must not be nil", ErrInvalidConfig)
	}
	loading, err := BuildCumulative(cfg.Loading)
	if err != nil {
		return nil, fmt.Errorf("loading distribution: %w", err)
	}
	weighing, err := BuildCumulative(cfg.Weighing)
	if err != nil {
		return nil, fmt.Errorf("weighing distribution: %w", err)
	}
	travel, err := BuildCumulative(cfg.Travel)
	if err != nil {
		return nil, fmt.Errorf("travel distribution: %w", err)
	}

	s := &Simulator{
		Clock:      0,
		Horizon:    cfg.Horizon,
		Config:     cfg,
		EventQueue: NewEventQueue(),
		Resources:  NewResourceState(cfg.Loaders, cfg.Scales),
		Trucks:     make([]*Truck, cfg.Trucks),
		Stats:      &Accumulator{},
		Log:        trace.NewEventLog(),
		loading:    loading,
		weighing:   weighing,
		travel:     travel,
		rng:        rng,
	}
	for i := range s.Trucks {
		s.Trucks[i] = &Truck{ID: i + 1, Phase: PhaseIdle}
	}

	if cfg.useTextbookStart() {
		s.initTextbook()
	} else {
		s.initGeneral()
	}
	return s, nil
}

// initTextbook places trucks 1..N-1 at the loader and truck N at the scale.
func (sim *Simulator) initTextbook() {
	logrus.Infof("[t=%.2f] Textbook initial state: %d trucks at loader, truck %d at scale",
		sim.Clock, len(sim.Trucks)-1, len(sim.Trucks))
	last := len(sim.Trucks) - 1
	for _, truck := range sim.Trucks[:last] {
		sim.admitToLoader(truck)
	}
	sim.admitToScale(sim.Trucks[last])
}

// initGeneral has every truck arrive at the loader queue at t=0.
func (sim *Simulator) initGeneral() {
	logrus.Infof("[t=%.2f] General initial state: %d trucks arrive at t=0", sim.Clock, len(sim.Trucks))
	for _, truck := range sim.Trucks {
		sim.Schedule(Event{Time: sim.Clock, Kind: ArriveAtLoaderQueue, TruckID: truck.ID})
	}
}

// Schedule pushes an event into the future event list.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Truck returns the truck with the given 1-based ID.
func (sim *Simulator) Truck(id int) *Truck {
	if id < 1 || id > len(sim.Trucks) {
		panic(fmt.Sprintf("Truck: id %d outside [1, %d]", id, len(sim.Trucks)))
	}
	return sim.Trucks[id-1]
}

// Run processes events until the future event list is empty or the next
// event lies beyond the horizon, then returns the run statistics.
func (sim *Simulator) Run() (Result, error) {
	if sim.hasRun {
		return Result{}, ErrAlreadyRun
	}
	sim.hasRun = true

	for {
		next, ok := sim.EventQueue.Peek()
		if !ok {
			break
		}
		if next.Time > sim.Horizon {
			// the triggering event is discarded, not partially processed
			sim.Clock = sim.Horizon
			logrus.Debugf("[t=%.2f] Horizon reached; discarding %s", sim.Clock, next)
			break
		}
		ev, _ := sim.EventQueue.PopNext()

		// integrate with the counts that held before this event
		sim.Stats.Advance(ev.Time, sim.Resources.LoadersBusy, sim.Resources.ScalesBusy)
		sim.Clock = ev.Time
		logrus.Debugf("[t=%.2f] Executing %s", sim.Clock, ev)

		sim.dispatch(ev)
		sim.eventsProcessed++

		if sim.Config.CheckInvariants {
			if err := sim.Resources.CheckInvariants(sim.Trucks); err != nil {
				panic(fmt.Sprintf("invariant violated after %s: %v", ev, err))
			}
		}
		if sim.AfterEvent != nil {
			sim.AfterEvent(sim, ev)
		}
	}

	sim.Stats.Advance(sim.Clock, sim.Resources.LoadersBusy, sim.Resources.ScalesBusy)
	logrus.Infof("[t=%.2f] Simulation ended after %d events", sim.Clock, sim.eventsProcessed)
	return sim.result(), nil
}

func (sim *Simulator) result() Result {
	return Result{
		TotalTime:          sim.Clock,
		Utilization:        sim.Stats.Finalize(sim.Clock, sim.Resources.LoaderCapacity, sim.Resources.ScaleCapacity),
		LoaderBusyIntegral: sim.Stats.LoaderBusyIntegral,
		ScaleBusyIntegral:  sim.Stats.ScaleBusyIntegral,
		EventsProcessed:    sim.eventsProcessed,
		CyclesCompleted:    sim.cyclesCompleted,
		PeakLoaderQueueLen: sim.peakLoaderQueueLen,
		PeakScaleQueueLen:  sim.peakScaleQueueLen,
	}
}

func (sim *Simulator) dispatch(ev Event) {
	truck := sim.Truck(ev.TruckID)
	switch ev.Kind {
	case ArriveAtLoaderQueue:
		sim.handleArrival(truck)
	case EndLoading:
		sim.handleEndLoading(truck)
	case EndWeighing:
		sim.handleEndWeighing(truck)
	default:
		panic(fmt.Sprintf("dispatch: unknown event kind %s", ev.Kind))
	}
}

func (sim *Simulator) handleArrival(truck *Truck) {
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d arrives at loader queue", truck.ID)
	sim.admitToLoader(truck)
}

// handleEndLoading frees the loader, sends the truck to the scale, and hands
// the loader to the head of its wait-list in the same step.
func (sim *Simulator) handleEndLoading(truck *Truck) {
	sim.Resources.LoadersBusy--
	truck.Phase = PhaseInScaleQueue
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d finishes loading (loaders busy: %d)", truck.ID, sim.Resources.LoadersBusy)

	sim.admitToScale(truck)

	if id, ok := sim.Resources.LoaderQueue.Dequeue(); ok {
		next := sim.Truck(id)
		sim.Log.Recordf(sim.Clock, id, "Truck %d leaves loader queue (loader queue: %d)", id, sim.Resources.LoaderQueueLen())
		sim.startLoading(next)
	}
}

// handleEndWeighing frees the scale, sends the truck travelling, and hands
// the scale to the head of its wait-list in the same step.
func (sim *Simulator) handleEndWeighing(truck *Truck) {
	sim.Resources.ScalesBusy--
	sim.cyclesCompleted++
	truck.Phase = PhaseTraveling
	travelTime := sim.travel.Sample(sim.rng)
	sim.Schedule(Event{Time: sim.Clock + travelTime, Kind: ArriveAtLoaderQueue, TruckID: truck.ID})
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d finishes weighing, travels for %.2f until T=%.2f (scales busy: %d)",
		truck.ID, travelTime, sim.Clock+travelTime, sim.Resources.ScalesBusy)

	if id, ok := sim.Resources.ScaleQueue.Dequeue(); ok {
		next := sim.Truck(id)
		sim.Log.Recordf(sim.Clock, id, "Truck %d leaves scale queue (scale queue: %d)", id, sim.Resources.ScaleQueueLen())
		sim.startWeighing(next)
	}
}

// admitToLoader starts loading if a loader is free, otherwise queues the truck.
func (sim *Simulator) admitToLoader(truck *Truck) {
	if sim.Resources.LoaderAvailable() {
		sim.startLoading(truck)
		return
	}
	sim.Resources.LoaderQueue.Enqueue(truck.ID)
	truck.Phase = PhaseInLoaderQueue
	sim.peakLoaderQueueLen = max(sim.peakLoaderQueueLen, sim.Resources.LoaderQueueLen())
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d waits for a loader (loader queue: %d)", truck.ID, sim.Resources.LoaderQueueLen())
}

// admitToScale starts weighing if a scale is free, otherwise queues the truck.
func (sim *Simulator) admitToScale(truck *Truck) {
	if sim.Resources.ScaleAvailable() {
		sim.startWeighing(truck)
		return
	}
	sim.Resources.ScaleQueue.Enqueue(truck.ID)
	truck.Phase = PhaseInScaleQueue
	sim.peakScaleQueueLen = max(sim.peakScaleQueueLen, sim.Resources.ScaleQueueLen())
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d waits for the scale (scale queue: %d)", truck.ID, sim.Resources.ScaleQueueLen())
}

func (sim *Simulator) startLoading(truck *Truck) {
	sim.Resources.LoadersBusy++
	truck.Phase = PhaseLoading
	d := sim.loading.Sample(sim.rng)
	sim.Schedule(Event{Time: sim.Clock + d, Kind: EndLoading, TruckID: truck.ID})
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d starts loading for %.2f until T=%.2f (loaders busy: %d)",
		truck.ID, d, sim.Clock+d, sim.Resources.LoadersBusy)
}

func (sim *Simulator) startWeighing(truck *Truck) {
	sim.Resources.ScalesBusy++
	truck.Phase = PhaseWeighing
	d := sim.weighing.Sample(sim.rng)
	sim.Schedule(Event{Time: sim.Clock + d, Kind: EndWeighing, TruckID: truck.ID})
	sim.Log.Recordf(sim.Clock, truck.ID, "Truck %d starts weighing for %.2f until T=%.2f (scales busy: %d)",
		truck.ID, d, sim.Clock+d, sim.Resources.ScalesBusy)
}

// PhaseCounts returns how many trucks are in each phase.
func (sim *Simulator) PhaseCounts() map[Phase]int {
	counts := make(map[Phase]int, len(phaseNames))
	for _, t := range sim.Trucks {
		counts[t.Phase]++
	}
	return counts
}
