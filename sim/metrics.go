// Tracks time-weighted resource occupancy and derives utilization.

package sim

import (
	"fmt"
	"io"
)

// Accumulator integrates busy-resource counts over simulated time.
// Both integrals are monotonically non-decreasing.
type Accumulator struct {
	LoaderBusyIntegral float64 // sum of loadersBusy * elapsed
	ScaleBusyIntegral  float64 // sum of scalesBusy * elapsed
	LastUpdate         float64 // clock at the previous Advance
}

// Advance adds the busy-time for [LastUpdate, now] using the counts that
// held during that interval, then moves LastUpdate to now.
// Non-positive intervals add nothing.
func (a *Accumulator) Advance(now float64, loadersBusy, scalesBusy int) {
	elapsed := now - a.LastUpdate
	if elapsed > 0 {
		a.LoaderBusyIntegral += float64(loadersBusy) * elapsed
		a.ScaleBusyIntegral += float64(scalesBusy) * elapsed
	}
	a.LastUpdate = now
}

// Utilization holds resource utilization as percentages of available resource-time.
type Utilization struct {
	LoaderPercent float64
	ScalePercent  float64
}

// Finalize converts the integrals into utilization percentages.
// A zero totalTime yields zero utilization instead of dividing by zero.
func (a *Accumulator) Finalize(totalTime float64, loaderCapacity, scaleCapacity int) Utilization {
	if totalTime <= 0 {
		return Utilization{}
	}
	var u Utilization
	if loaderCapacity > 0 {
		u.LoaderPercent = a.LoaderBusyIntegral / (float64(loaderCapacity) * totalTime) * 100
	}
	if scaleCapacity > 0 {
		u.ScalePercent = a.ScaleBusyIntegral / (float64(scaleCapacity) * totalTime) * 100
	}
	return u
}

// Result is the outcome of one simulation run.
type Result struct {
	TotalTime   float64 // final clock: horizon, or time of the last processed event
	Utilization Utilization

	LoaderBusyIntegral float64
	ScaleBusyIntegral  float64

	EventsProcessed    int // events dispatched to handlers
	CyclesCompleted    int // EndWeighing events processed
	PeakLoaderQueueLen int
	PeakScaleQueueLen  int
}

// Print writes the final statistics, rounded to two decimals for display.
func (r Result) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Statistics ===")
	fmt.Fprintf(w, "Total Time           : %.2f\n", r.TotalTime)
	fmt.Fprintf(w, "Loader Utilization   : %.2f%%\n", r.Utilization.LoaderPercent)
	fmt.Fprintf(w, "Scale Utilization    : %.2f%%\n", r.Utilization.ScalePercent)
	fmt.Fprintf(w, "Events Processed     : %d\n", r.EventsProcessed)
	fmt.Fprintf(w, "Cycles Completed     : %d\n", r.CyclesCompleted)
	fmt.Fprintf(w, "Peak Loader Queue    : %d\n", r.PeakLoaderQueueLen)
	fmt.Fprintf(w, "Peak Scale Queue     : %d\n", r.PeakScaleQueueLen)
}
