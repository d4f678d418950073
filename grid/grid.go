// Package grid parses rectangular character maps into an immutable
// Grid and answers openness and adjacency queries over it.
//
// Cells use the alphabet '#' (wall), '.' (open), 'S' (start), 'E' (end).
package grid

import (
	"fmt"
	"strings"
)

// neighborOrder fixes the enumeration order of Neighbors. The order
// only affects determinism of downstream discovery, not correctness.
var neighborOrder = [NumFacings]Facing{North, South, East, West}

// Grid is an immutable rectangular map with a unique Start and End.
type Grid struct {
	cells      [][]FloorKind
	rows, cols int
	start, end Coordinate
}

// Parse builds a Grid from a block of map text, one row per line.
// Returns ErrEmptyGrid, ErrRagged, ErrInvalidRune (wrapped with the
// offending character and position), ErrMissingStart, or ErrMissingEnd.
// Complexity: O(rows×cols) time and memory.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		rows:  len(lines),
		cols:  len(lines[0]),
		cells: make([][]FloorKind, len(lines)),
	}
	var haveStart, haveEnd bool
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), g.cols, ErrRagged)
		}
		g.cells[r] = make([]FloorKind, g.cols)
		for c, ch := range line {
			switch ch {
			case '#':
				g.cells[r][c] = Wall
			case '.':
				g.cells[r][c] = Open
			case 'S':
				g.cells[r][c] = Start
				g.start = Coordinate{Row: r, Col: c}
				haveStart = true
			case 'E':
				g.cells[r][c] = End
				g.end = Coordinate{Row: r, Col: c}
				haveEnd = true
			default:
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrInvalidRune, ch, r, c)
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// Rows returns the number of map rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of map columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the coordinate of the unique 'S' cell.
func (g *Grid) Start() Coordinate { return g.start }

// End returns the coordinate of the unique 'E' cell.
func (g *Grid) End() Coordinate { return g.end }

// InBounds reports whether c lies within the map rectangle.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the FloorKind of c, or Wall for out-of-bounds coordinates.
// Folding bounds into the lookup keeps adjacency queries branch-free.
func (g *Grid) At(c Coordinate) FloorKind {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[c.Row][c.Col]
}

// IsOpen reports whether c is a walkable cell. Out-of-bounds
// coordinates are closed.
func (g *Grid) IsOpen(c Coordinate) bool { return g.At(c).IsOpen() }

// Neighbors returns the open cells adjacent to c, paired with the
// facing used to enter each, in fixed North, South, East, West order.
// At most NumFacings entries. Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	out := make([]Neighbor, 0, NumFacings)
	for _, dir := range neighborOrder {
		next := c.Step(dir)
		if g.IsOpen(next) {
			out = append(out, Neighbor{Dir: dir, Cell: next})
		}
	}

	return out
}

// String renders the map back to its textual form, one row per line.
// Parse(g.String()) reproduces an equivalent grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r][c].Rune())
		}
		if r+1 < g.rows {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
