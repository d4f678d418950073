// Package corridor compresses a dense maze grid into a sparse junction
// graph by collapsing straight corridor runs into weighted edges.
package corridor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
)

// noJunction marks grid cells that are not junctions in the id map.
const noJunction = -1

// Build parses a map and compresses it in one call: the module's
// text-to-graph surface. Errors from grid.Parse pass through unchanged.
func Build(input string) (*Graph, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	return Compress(g)
}

// Compress converts g into its junction graph.
//
// Junctions are the start cell, the end cell, and every open cell with
// strictly more than two open neighbors. Ids are assigned with Start=0,
// End=1, and branch cells in row-major scan order from 2. A discovery
// walk from Start then follows each corridor to its far junction and
// records the mirrored edge pair; dead-end corridors record nothing.
//
// An unreachable End is not an error: the resulting graph simply has
// no path between StartID and EndID, which the solver reports.
//
// Complexity: O(rows×cols) — every corridor cell is walked at most
// once per incident junction direction.
func Compress(g *grid.Grid) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	ids, count := junctionIDs(g)

	nodes := make([][]Edge, count)
	visited := make([]bool, count)
	pending := []grid.Coordinate{g.Start()}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		id := ids[cur.Row][cur.Col]
		if visited[id] {
			continue
		}
		visited[id] = true

		for _, n := range g.Neighbors(cur) {
			far, cost, ok := walk(g, n)
			if !ok {
				// Dead end: the corridor contributes no edge.
				continue
			}
			farID := ids[far.Cell.Row][far.Cell.Col]
			if visited[farID] {
				// The mirrored pair was already recorded from the far side.
				continue
			}
			pending = append(pending, far.Cell)
			nodes[id] = append(nodes[id], Edge{
				Leave:  n.Dir,
				To:     farID,
				Arrive: far.Dir,
				Cost:   cost,
			})
			nodes[farID] = append(nodes[farID], Edge{
				Leave:  far.Dir.Opposite(),
				To:     id,
				Arrive: n.Dir.Opposite(),
				Cost:   cost,
			})
		}
	}

	return &Graph{nodes: nodes}, nil
}

// junctionIDs scans the grid and assigns every junction its id.
// Returns the per-cell id map (noJunction elsewhere) and the junction
// count. Start and End always receive their fixed ids, whether or not
// they are branch points.
func junctionIDs(g *grid.Grid) ([][]int, int) {
	ids := make([][]int, g.Rows())
	for r := range ids {
		ids[r] = make([]int, g.Cols())
		for c := range ids[r] {
			ids[r][c] = noJunction
		}
	}

	next := EndID + 1
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Coordinate{Row: r, Col: c}
			switch g.At(cell) {
			case grid.Start:
				ids[r][c] = StartID
			case grid.End:
				ids[r][c] = EndID
			case grid.Open:
				if len(g.Neighbors(cell)) > 2 {
					ids[r][c] = next
					next++
				}
			}
		}
	}

	return ids, next
}

// walk follows a corridor starting from the first cell entered (from's
// Cell, entered via from's Dir) until it reaches another junction.
// Immediate reversal is forbidden; every direction change counts one
// turn; every cell entered counts one step. Reports ok=false for a
// dead end, which produces no edge.
func walk(g *grid.Grid, from grid.Neighbor) (grid.Neighbor, CostComponents, bool) {
	cur := from
	cost := CostComponents{Steps: 1}
	for {
		// Start and End terminate a corridor even without a branch.
		if cur.Cell == g.Start() || cur.Cell == g.End() {
			return cur, cost, true
		}

		var forward []grid.Neighbor
		for _, n := range g.Neighbors(cur.Cell) {
			if n.Dir != cur.Dir.Opposite() {
				forward = append(forward, n)
			}
		}
		switch len(forward) {
		case 0:
			return grid.Neighbor{}, CostComponents{}, false
		case 1:
			next := forward[0]
			if next.Dir != cur.Dir {
				cost.Turns++
			}
			cost.Steps++
			cur = next
		default:
			// More than one way forward means >2 open neighbors in
			// total: a branch junction.
			return cur, cost, true
		}
	}
}

// DumpIntersections renders the junction id map over the grid outline:
// two characters per cell, ids right-aligned, "##" for walls and ".."
// for corridor cells. Debug aid; the format is not part of the API
// contract.
func DumpIntersections(g *grid.Grid) string {
	ids, _ := junctionIDs(g)
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			switch {
			case ids[r][c] != noJunction:
				fmt.Fprintf(&b, "%2d", ids[r][c])
			case g.At(grid.Coordinate{Row: r, Col: c}) == grid.Wall:
				b.WriteString("##")
			default:
				b.WriteString("..")
			}
		}
		if r+1 < g.Rows() {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
