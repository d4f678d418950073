// Package grid parses rectangular character maps into immutable grids
// and answers openness and adjacency queries.
//
// What:
//
//   - Parse turns '#'/'.'/'S'/'E' text into a bounds-checked Grid.
//   - At/IsOpen fold bounds checking into the cell lookup: anything
//     outside the rectangle reads as Wall.
//   - Neighbors enumerates open adjacent cells in a fixed North, South,
//     East, West order for deterministic downstream discovery.
//   - String renders the map back to text for debugging and round-trips.
//
// Why:
//
//   - Every later stage (corridor compression, directional search)
//     reduces to the two queries "is this cell open" and "which open
//     cells border it"; keeping them here keeps the rest of the
//     pipeline free of coordinate arithmetic.
//
// Complexity:
//
//   - Parse:     O(rows×cols) time and memory.
//   - At/IsOpen: O(1).
//   - Neighbors: O(1) (at most four probes).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRagged: rows have differing lengths.
//   - ErrInvalidRune: a character outside the map alphabet.
//   - ErrMissingStart, ErrMissingEnd: the unique marker cells are absent.
package grid
