package sim

import (
	"fmt"
	"math"
)

// InitialState selects how trucks are placed before the first event.
type InitialState string

const (
	// InitialStateAuto uses the textbook start for exactly 6 trucks,
	// 2 loaders and 1 scale, and the general start otherwise.
	InitialStateAuto InitialState = "auto"
	// InitialStateGeneral schedules ArriveAtLoaderQueue at t=0 for every truck.
	InitialStateGeneral InitialState = "general"
	// InitialStateTextbook puts trucks 1..N-1 at the loader and truck N at the scale.
	InitialStateTextbook InitialState = "textbook"
)

var validInitialStates = map[InitialState]bool{
	InitialStateAuto:     true,
	InitialStateGeneral:  true,
	InitialStateTextbook: true,
	"":                   true, // empty defaults to auto
}

// IsValidInitialState returns true if s is a recognized initial state name.
func IsValidInitialState(s string) bool {
	return validInitialStates[InitialState(s)]
}

// Textbook scenario dimensions that trigger the special-cased start under InitialStateAuto.
const (
	TextbookTrucks  = 6
	TextbookLoaders = 2
	TextbookScales  = 1
)

// SimConfig groups everything one run needs.
type SimConfig struct {
	Trucks  int     // number of trucks in the closed loop (> 0)
	Loaders int     // loader capacity (> 0)
	Scales  int     // scale capacity (> 0)
	Horizon float64 // simulation time limit (>= 0)

	InitialState InitialState

	Loading  Table // loading-time distribution
	Weighing Table // weighing-time distribution
	Travel   Table // travel-time distribution

	// CheckInvariants verifies resource/phase consistency after every event
	// and panics on violation.
	CheckInvariants bool
}

// Validate checks scalar fields. Distribution tables are validated when
// their cumulative tables are built.
func (c SimConfig) Validate() error {
	if c.Trucks <= 0 {
		return fmt.Errorf("%w: trucks must be positive, got %d", ErrInvalidConfig, c.Trucks)
	}
	if c.Loaders <= 0 {
		return fmt.Errorf("%w: loaders must be positive, got %d", ErrInvalidConfig, c.Loaders)
	}
	if c.Scales <= 0 {
		return fmt.Errorf("%w: scales must be positive, got %d", ErrInvalidConfig, c.Scales)
	}
	if math.IsNaN(c.Horizon) || c.Horizon < 0 {
		return fmt.Errorf("%w: horizon must be non-negative, got %g", ErrInvalidConfig, c.Horizon)
	}
	if !IsValidInitialState(string(c.InitialState)) {
		return fmt.Errorf("%w: unknown initial state %q; valid: auto, general, textbook", ErrInvalidConfig, c.InitialState)
	}
	return nil
}

// useTextbookStart resolves InitialState into a concrete choice.
func (c SimConfig) useTextbookStart() bool {
	switch c.InitialState {
	case InitialStateTextbook:
		return true
	case InitialStateGeneral:
		return false
	default:
		return c.Trucks == TextbookTrucks && c.Loaders == TextbookLoaders && c.Scales == TextbookScales
	}
}
