// Package corridor compiles a dense maze grid into a sparse weighted
// junction graph.
//
// What:
//
//   - Junction discovery: the start cell, the end cell, and every open
//     cell with more than two open neighbors become graph nodes, with
//     ids fixed as Start=0, End=1, branch cells in scan order from 2.
//   - Corridor collapse: the straight run of cells between two
//     junctions becomes a single edge carrying the facing used to leave
//     the source, the facing held on arrival, and a step/turn cost
//     breakdown. Mirrored A→B and B→A edges share one breakdown
//     because corridor cost is symmetric.
//   - Dead-end corridors are dropped during the walk: they can never
//     lie on a route between junctions.
//
// Why:
//
//   - A directional shortest-path search over raw cells touches every
//     corridor cell once per facing. Collapsing corridors first shrinks
//     the state space to junctions×facings, which is typically orders
//     of magnitude smaller on real mazes.
//
// Complexity:
//
//   - Compress: O(rows×cols) time, O(rows×cols) memory for the id map,
//     O(junctions+edges) for the graph itself.
//
// Errors:
//
//   - ErrNilGrid: Compress was handed a nil grid.
//   - Build additionally passes through all grid.Parse errors.
//
// An unreachable End is deliberately not an error at this layer; the
// graph is still valid, it merely has no Start→End path.
package corridor
