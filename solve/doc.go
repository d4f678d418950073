// Package solve answers the two maze queries over a compiled junction
// graph: the minimum directional travel cost from start to end, and
// the number of cells lying on any minimum-cost route.
//
// What:
//
//   - MinimumCost runs a single-source shortest-path relaxation over
//     (junction, facing) states, a min-heap with lazy decrease-key and
//     an explicit (cost, insertion order) comparator. Moving along a
//     corridor costs its steps and internal turns; leaving a junction
//     in a facing other than the one held costs one extra turn.
//   - OptimalCellCount walks backward from the end over the finished
//     cost table, expanding only edges whose cost exactly bridges two
//     recorded optima, and tallies every junction and interior
//     corridor cell encountered.
//
// Why:
//
//   - The facing is part of the state because turning and stepping are
//     priced differently; a plain cell-distance search cannot express
//     that.
//   - The backward equality walk recovers the union of all optimal
//     routes, not just one route, which is what the cell count asks.
//
// Options:
//
//   - WithStepCost, WithTurnCost: cost weights (defaults 1 and 1000).
//   - WithInitialFacing: the canonical facing held at start (default
//     East). Cost 0 is seeded for this facing only; the map format
//     treats it as a convention, so it is configuration, not inference.
//
// Errors:
//
//   - ErrNilGraph: a query was handed a nil graph.
//   - ErrNoPath: start and end are disconnected (MinimumCost only;
//     OptimalCellCount reports 0 for that case).
//   - ErrBadStepCost, ErrBadTurnCost, ErrBadFacing: panicked from the
//     option constructors on invalid configuration.
//
// Both queries rebuild their state from scratch per call and never
// mutate the graph, so repeated calls yield identical results.
package solve
