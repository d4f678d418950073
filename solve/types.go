// Package solve defines configuration options and sentinel errors for
// the directional maze solver.
package solve

import (
	"math"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Cost is a scalar traversal cost. All costs are non-negative integers,
// so exact equality comparisons during reconstruction are safe.
type Cost = int64

// Inf is the sentinel cost of an unreachable (junction, facing) state.
const Inf Cost = math.MaxInt64

// Default cost weights, matching the reference maze convention of
// cheap steps and expensive turns.
const (
	// DefaultStepCost is the cost of entering one cell.
	DefaultStepCost Cost = 1
	// DefaultTurnCost is the cost of one 90° turn.
	DefaultTurnCost Cost = 1000
)

// Options configures one solver query.
//
// StepCost      – cost per cell entered (≥ 0).
// TurnCost      – cost per 90° turn (≥ 0).
// InitialFacing – the canonical facing held at Start before the first move.
// Cost 0 is seeded for this facing only; the other three start at Inf.
// A convention of the map format, not an inferred property.
type Options struct {
	StepCost      Cost
	TurnCost      Cost
	InitialFacing grid.Facing
}

// Option is a functional option for configuring a solver query.
type Option func(*Options)

// DefaultOptions returns the reference configuration:
// StepCost=1, TurnCost=1000, InitialFacing=East.
func DefaultOptions() Options {
	return Options{
		StepCost:      DefaultStepCost,
		TurnCost:      DefaultTurnCost,
		InitialFacing: grid.East,
	}
}

// WithStepCost sets the cost of entering one cell.
// Panics with ErrBadStepCost on negative values; panicking in option
// constructors signals invalid configuration early.
func WithStepCost(c Cost) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadStepCost.Error())
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one 90° turn.
// Panics with ErrBadTurnCost on negative values.
func WithTurnCost(c Cost) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadTurnCost.Error())
		}
		o.TurnCost = c
	}
}

// WithInitialFacing sets the canonical facing held at Start.
// Panics with ErrBadFacing on values outside the Facing enumeration.
func WithInitialFacing(f grid.Facing) Option {
	return func(o *Options) {
		if f >= grid.NumFacings {
			panic(ErrBadFacing.Error())
		}
		o.InitialFacing = f
	}
}

// scalar resolves a cost breakdown to its weighted sum under o.
func (o Options) scalar(steps, turns int64) Cost {
	return steps*o.StepCost + turns*o.TurnCost
}
