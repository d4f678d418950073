// Package corridor defines the junction graph types produced by
// compressing a maze grid.
package corridor

import "github.com/katalvlaran/lvlmaze/grid"

// Fixed junction ids. The solver and reconstructor rely on this
// numbering to locate the start and goal without extra lookup.
const (
	// StartID is the junction id of the start cell.
	StartID = 0
	// EndID is the junction id of the end cell.
	EndID = 1
)

// CostComponents records the raw ingredients of a corridor traversal.
// It is resolved to a scalar only by the solver, so step and turn
// weights remain configurable per query rather than baked into edges.
type CostComponents struct {
	// Steps is the number of cells entered while walking the corridor,
	// including the destination junction cell.
	Steps int64
	// Turns is the number of direction changes made inside the corridor.
	Turns int64
}

// Edge is a directed corridor between two junctions. Edges are created
// in mirrored pairs because corridors are bidirectional; the two
// mirrors share CostComponents but differ in facings.
type Edge struct {
	// Leave is the facing used on the first step out of the source.
	Leave grid.Facing
	// To is the destination junction id.
	To int
	// Arrive is the facing held when entering the destination.
	Arrive grid.Facing
	// Cost is the corridor's traversal cost breakdown.
	Cost CostComponents
}

// Graph is the sparse junction graph: adjacency slices indexed by
// junction id. A junction has at most four outgoing edges, one per
// open neighbor direction. Immutable once compiled.
type Graph struct {
	nodes [][]Edge
}

// NodeCount returns the number of junctions, including Start and End.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgesFrom returns the outgoing edges of junction id. The returned
// slice is owned by the Graph and must not be modified.
func (g *Graph) EdgesFrom(id int) []Edge { return g.nodes[id] }
