package solve

import "errors"

// Sentinel errors returned (or panicked from option constructors) by
// the solver.
var (
	// ErrNilGraph indicates a nil *corridor.Graph was passed to a query.
	ErrNilGraph = errors.New("solve: graph is nil")

	// ErrNoPath indicates Start and End are not connected. This is a
	// valid terminal outcome of MinimumCost, not a build failure.
	ErrNoPath = errors.New("solve: no path from start to end")

	// ErrBadStepCost indicates WithStepCost was given a negative value.
	ErrBadStepCost = errors.New("solve: StepCost must be non-negative")

	// ErrBadTurnCost indicates WithTurnCost was given a negative value.
	ErrBadTurnCost = errors.New("solve: TurnCost must be non-negative")

	// ErrBadFacing indicates WithInitialFacing was given a value outside
	// the Facing enumeration.
	ErrBadFacing = errors.New("solve: InitialFacing out of range")
)
