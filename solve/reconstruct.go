package solve

import (
	"github.com/katalvlaran/lvlmaze/corridor"
	"github.com/katalvlaran/lvlmaze/grid"
)

// backState is one frame of the backward traversal: a junction reached
// while unwinding an optimal route, the facing held there, and the
// cost budget still to be accounted for back to Start.
type backState struct {
	budget Cost
	node   int
	facing grid.Facing
}

// OptimalCellCount returns the number of distinct grid cells lying on
// at least one minimum-cost route from Start to End — the union across
// all optimal routes, not the length of a single one.
//
// The walk runs backward from End over the forward cost table,
// following only edges whose cost exactly accounts for the difference
// between adjacent optimal costs. The forward relaxation is exact and
// all costs are integers, so the equality check is safe. Per-edge
// visited marking (destination, arrival facing) bounds the traversal;
// per-junction marking gates only the cell tally, because one junction
// can be the exit point of several independent optimal branches.
//
// Returns ErrNilGraph for a nil graph and 0 with a nil error when
// Start and End are disconnected.
//
// Complexity: dominated by the cost-table build; the backward walk
// itself is O(E·F).
func OptimalCellCount(g *corridor.Graph, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table := costTable(g, o)
	best := minOverFacings(table[corridor.EndID])
	if best == Inf {
		return 0, nil
	}

	nodeCounted := make([]bool, g.NodeCount())
	edgeSeen := make([][grid.NumFacings]bool, g.NodeCount())
	var pending []backState

	// Seed with every corridor whose forward arrival at End holds
	// exactly the global minimum. The mirror of an End-outgoing edge
	// arrives at End facing the opposite of the edge's leave facing.
	cells := int64(1)
	nodeCounted[corridor.EndID] = true
	for _, e := range g.EdgesFrom(corridor.EndID) {
		if table[corridor.EndID][e.Leave.Opposite()] != best {
			continue
		}
		pending = append(pending, backState{
			budget: best - o.scalar(e.Cost.Steps, e.Cost.Turns),
			node:   e.To,
			facing: e.Arrive,
		})
		edgeSeen[e.To][e.Arrive] = true
		// Interior corridor cells only; the junction cell itself is
		// tallied once, when its id is first counted.
		cells += e.Cost.Steps - 1
	}

	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if !nodeCounted[cur.node] {
			nodeCounted[cur.node] = true
			cells++
		}

		for _, e := range g.EdgesFrom(cur.node) {
			if edgeSeen[e.To][e.Arrive] {
				continue
			}
			budget := cur.budget
			if e.Leave != cur.facing {
				// Mirror of the forward solver's turn-in-place charge.
				budget -= o.TurnCost
			}
			edgeCost := o.scalar(e.Cost.Steps, e.Cost.Turns)
			if budget < edgeCost {
				continue
			}
			if budget != table[cur.node][e.Leave.Opposite()] {
				// The corridor is not part of any optimal route.
				continue
			}
			edgeSeen[e.To][e.Arrive] = true
			cells += e.Cost.Steps - 1
			pending = append(pending, backState{
				budget: budget - edgeCost,
				node:   e.To,
				facing: e.Arrive,
			})
		}
	}

	return cells, nil
}
