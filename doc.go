// Package lvlmaze solves weighted directional mazes: minimum-cost
// routes through character-map grids where turning and stepping carry
// different prices.
//
// 🚀 What is lvlmaze?
//
//	A small, focused engine that compiles a dense maze grid into a
//	sparse junction graph and answers optimal-route queries over it:
//		• grid/     — map parsing ('#', '.', 'S', 'E'), openness & adjacency
//		• corridor/ — junction discovery + corridor collapse into weighted edges
//		• solve/    — (junction, facing) Dijkstra, minimum cost & optimal-cell count
//		• mazegen/  — deterministic synthetic mazes for tests and benchmarks
//
// The pipeline:
//
//	text ──grid.Parse──▶ Grid ──corridor.Compress──▶ Graph
//	     ──solve.MinimumCost───────────▶ cheapest route cost
//	     ──solve.OptimalCellCount──────▶ cells on any optimal route
//
// Quick example:
//
//	g, err := corridor.Build(mapText)
//	if err != nil { ... }
//	cost, err := solve.MinimumCost(g)
//	cells, err := solve.OptimalCellCount(g)
//
// Costs are configurable (solve.WithStepCost, solve.WithTurnCost,
// solve.WithInitialFacing); defaults match the reference convention of
// 1 per step and 1000 per 90° turn.
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
