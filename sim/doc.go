// Package sim provides the discrete-event simulation engine for the
// dump-truck loading/weighing/travel network.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - truck.go: Truck lifecycle (loader queue → loading → scale queue → weighing → travel)
//   - event.go: the three event kinds that drive the simulation
//   - simulator.go: initialization, the event loop, and the event handlers
//
// # Supporting pieces
//
//   - distribution.go: empirical distribution parsing and inverse-transform sampling
//   - event_queue.go: the future event list (heap ordered by time, then insertion order)
//   - resources.go, queue.go: loader/scale occupancy and FIFO wait-lists
//   - metrics.go: time-weighted busy integrals and utilization
//   - rng.go: injectable random sources
//
// Sub-packages:
//   - sim/trace/: the clock-stamped, human-readable event log
//   - sim/scenario/: YAML scenario files and the built-in textbook scenario
//
// A Simulator owns all of its state and runs exactly once. Independent runs
// may execute concurrently as long as each has its own Simulator and RandomSource.
package sim
