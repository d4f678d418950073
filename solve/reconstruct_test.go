// Package solve_test cross-checks the compressed-graph solver against
// an independent brute-force search over raw grid cells.
package solve_test

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/corridor"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/mazegen"
	"github.com/katalvlaran/lvlmaze/solve"
)

//----------------------------------------------------------------------------//
// Brute-Force Oracle
//----------------------------------------------------------------------------//

// cellState is a raw (cell, facing) search state, uncompressed.
type cellState struct {
	cell   grid.Coordinate
	facing grid.Facing
}

type cellItem struct {
	cost  int64
	state cellState
}

type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	item := old[len(old)-1]
	*pq = old[:len(old)-1]

	return item
}

// bruteSolve runs a plain Dijkstra over every (cell, facing) state:
// step forward for stepCost, rotate 90° for turnCost. Returns the
// minimum cost to the end cell and the cells of one optimal route
// (via predecessors), or ok=false when the end is unreachable.
func bruteSolve(g *grid.Grid, stepCost, turnCost int64) (int64, map[grid.Coordinate]bool, bool) {
	dist := map[cellState]int64{}
	prev := map[cellState]cellState{}
	start := cellState{cell: g.Start(), facing: grid.East}
	dist[start] = 0

	pq := &cellPQ{{cost: 0, state: start}}
	heap.Init(pq)
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(cellItem)
		if cur.cost > dist[cur.state] {
			continue
		}

		var moves []struct {
			next cellState
			cost int64
		}
		ahead := cur.state.cell.Step(cur.state.facing)
		if g.IsOpen(ahead) {
			moves = append(moves, struct {
				next cellState
				cost int64
			}{cellState{cell: ahead, facing: cur.state.facing}, stepCost})
		}
		for _, f := range []grid.Facing{(cur.state.facing + 1) % grid.NumFacings, (cur.state.facing + 3) % grid.NumFacings} {
			moves = append(moves, struct {
				next cellState
				cost int64
			}{cellState{cell: cur.state.cell, facing: f}, turnCost})
		}

		for _, m := range moves {
			next := cur.cost + m.cost
			if best, seen := dist[m.next]; !seen || next < best {
				dist[m.next] = next
				prev[m.next] = cur.state
				heap.Push(pq, cellItem{cost: next, state: m.next})
			}
		}
	}

	best := int64(-1)
	var goal cellState
	for f := grid.Facing(0); f < grid.NumFacings; f++ {
		s := cellState{cell: g.End(), facing: f}
		if d, ok := dist[s]; ok && (best < 0 || d < best) {
			best = d
			goal = s
		}
	}
	if best < 0 {
		return 0, nil, false
	}

	cells := map[grid.Coordinate]bool{goal.cell: true}
	for cur := goal; cur != start; {
		cur = prev[cur]
		cells[cur.cell] = true
	}

	return best, cells, true
}

//----------------------------------------------------------------------------//
// Cross-Check Tests
//----------------------------------------------------------------------------//

// TestBruteForce_ReferenceMaze checks the oracle agrees with the
// compressed solver on the acceptance maze, and that the reconstructed
// optimal-cell set covers any single optimal route.
func TestBruteForce_ReferenceMaze(t *testing.T) {
	g, err := grid.Parse(referenceMaze)
	require.NoError(t, err)
	cg, err := corridor.Compress(g)
	require.NoError(t, err)

	bruteCost, pathCells, ok := bruteSolve(g, 1, 1000)
	require.True(t, ok)

	cost, err := solve.MinimumCost(cg)
	require.NoError(t, err)
	require.Equal(t, bruteCost, int64(cost))

	count, err := solve.OptimalCellCount(cg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, int64(len(pathCells)))
}

// TestBruteForce_GeneratedMazes compares both queries on synthetic
// perfect mazes. A perfect maze has exactly one simple route between
// any two cells and positive step costs rule out detours, so the
// optimal-cell count must equal that route's cell count exactly.
func TestBruteForce_GeneratedMazes(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		input, err := mazegen.Generate(21, 31, seed)
		require.NoError(t, err)

		g, err := grid.Parse(input)
		require.NoError(t, err)
		cg, err := corridor.Compress(g)
		require.NoError(t, err)

		bruteCost, pathCells, ok := bruteSolve(g, 1, 1000)
		require.True(t, ok, "seed %d: generated maze must be solvable", seed)

		cost, err := solve.MinimumCost(cg)
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, bruteCost, int64(cost), "seed %d", seed)

		count, err := solve.OptimalCellCount(cg)
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, int64(len(pathCells)), count, "seed %d", seed)
	}
}

// TestGraphStructure_GeneratedMazes verifies compressor invariants on
// synthetic mazes: out-degree bounded by the open neighbor directions,
// and every edge paired with its mirror carrying the same cost.
func TestGraphStructure_GeneratedMazes(t *testing.T) {
	input, err := mazegen.Generate(31, 31, 42)
	require.NoError(t, err)

	g, err := grid.Parse(input)
	require.NoError(t, err)
	cg, err := corridor.Compress(g)
	require.NoError(t, err)

	for id := 0; id < cg.NodeCount(); id++ {
		edges := cg.EdgesFrom(id)
		require.LessOrEqual(t, len(edges), grid.NumFacings, "junction %d", id)

		for _, e := range edges {
			mirrored := false
			for _, back := range cg.EdgesFrom(e.To) {
				if back.To == id &&
					back.Leave == e.Arrive.Opposite() &&
					back.Arrive == e.Leave.Opposite() &&
					back.Cost == e.Cost {
					mirrored = true
					break
				}
			}
			require.True(t, mirrored, "edge %d→%d has no mirror", id, e.To)
		}
	}
}
