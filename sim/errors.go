package sim

import "errors"

// Input-validation errors. All of them are raised while parsing or building
// distributions and configuration, before a Simulator takes its first step.
var (
	// ErrMalformedDistributionLine reports a line that is not two comma-separated numbers.
	ErrMalformedDistributionLine = errors.New("malformed distribution line")

	// ErrProbabilityOutOfRange reports a single probability outside [0, 1].
	ErrProbabilityOutOfRange = errors.New("probability out of range")

	// ErrInvalidDistribution reports an empty table, a negative duration or probability,
	// or probabilities that do not sum to 1 within DistributionTolerance.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidConfig reports a SimConfig field outside its valid range.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrAlreadyRun is returned when Run is called twice on the same Simulator.
	ErrAlreadyRun = errors.New("simulator already run; construct a new one per run")
)
