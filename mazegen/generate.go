// Package mazegen produces synthetic solvable mazes in the map
// alphabet the engine parses, for property tests and benchmarks.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// minDim is the smallest usable maze side: a border, one cell ring,
// and room for at least one carved passage.
const minDim = 5

// Sentinel errors for maze generation.
var (
	// ErrDimensionTooSmall indicates rows or cols below the minimum.
	ErrDimensionTooSmall = errors.New("mazegen: rows and cols must each be at least 5")
	// ErrEvenDimension indicates an even side length, which the
	// lattice carving scheme cannot fill.
	ErrEvenDimension = errors.New("mazegen: rows and cols must be odd")
)

// carveOffsets are the four two-cell jumps of the backtracker, as
// {rowDelta, colDelta} pairs. The intermediate wall sits halfway.
var carveOffsets = [4][2]int{{-2, 0}, {2, 0}, {0, 2}, {0, -2}}

// Generate returns a rows×cols maze carved with an iterative
// recursive-backtracker over the odd-coordinate lattice. The result is
// deterministic for a fixed seed. 'S' sits at the top-left carved cell
// (1,1) and 'E' at the bottom-right carved cell (rows-2, cols-2); the
// backtracker visits every lattice cell, so the maze is always
// solvable (and, being a tree, has exactly one route between them).
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, seed int64) (string, error) {
	if rows < minDim || cols < minDim {
		return "", fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrDimensionTooSmall)
	}
	if rows%2 == 0 || cols%2 == 0 {
		return "", fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrEvenDimension)
	}

	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = '#'
		}
	}

	rng := rand.New(rand.NewSource(seed))
	type pos struct{ r, c int }
	stack := []pos{{1, 1}}
	cells[1][1] = '.'
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect uncarved lattice neighbors two cells away.
		var candidates []pos
		for _, d := range carveOffsets {
			nr, nc := cur.r+d[0], cur.c+d[1]
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && cells[nr][nc] == '#' {
				candidates = append(candidates, pos{nr, nc})
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		// Open the wall between and the target cell, then descend.
		cells[(cur.r+next.r)/2][(cur.c+next.c)/2] = '.'
		cells[next.r][next.c] = '.'
		stack = append(stack, next)
	}

	cells[1][1] = 'S'
	cells[rows-2][cols-2] = 'E'

	lines := make([]string, rows)
	for r := range cells {
		lines[r] = string(cells[r])
	}

	return strings.Join(lines, "\n"), nil
}
