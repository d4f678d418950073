// Package mazegen generates deterministic synthetic mazes in the
// '#'/'.'/'S'/'E' map alphabet.
//
// What:
//
//   - Generate carves a perfect maze (a spanning tree of the
//     odd-coordinate lattice) with an iterative recursive-backtracker
//     driven by a seeded rng, then places 'S' top-left and 'E'
//     bottom-right.
//
// Why:
//
//   - Property tests want many solvable mazes with a known structure:
//     a perfect maze has exactly one simple route between any two
//     cells, so brute-force answers are cheap to cross-check.
//   - Benchmarks want inputs larger than the hand-written fixtures.
//
// Determinism:
//
//   - Identical (rows, cols, seed) triples produce identical output.
//
// Errors:
//
//   - ErrDimensionTooSmall: a side below 5 leaves no room to carve.
//   - ErrEvenDimension: the lattice scheme needs odd side lengths.
package mazegen
