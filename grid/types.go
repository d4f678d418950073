// Package grid defines the core cell, facing, and coordinate types
// shared by every stage of the lvlmaze pipeline.
package grid

// FloorKind classifies a single map cell.
type FloorKind uint8

const (
	// Open is a walkable cell with no special role.
	Open FloorKind = iota
	// Wall is an impassable cell.
	Wall
	// Start is the walkable entry cell; exactly one per map.
	Start
	// End is the walkable goal cell; exactly one per map.
	End
)

// IsOpen reports whether the cell can be walked on.
// Start and End are open for movement purposes.
func (k FloorKind) IsOpen() bool { return k != Wall }

// Rune returns the map-alphabet character for the kind.
func (k FloorKind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// Facing is one of the four travel directions. The zero value is North.
type Facing uint8

const (
	// North decreases the row index.
	North Facing = iota
	// East increases the column index.
	East
	// South increases the row index.
	South
	// West decreases the column index.
	West
)

// NumFacings is the size of the Facing enumeration; dense per-facing
// tables throughout the solver are indexed [0, NumFacings).
const NumFacings = 4

// Opposite returns the reverse direction: North↔South, East↔West.
// Used to forbid immediate backtracking during corridor walks.
func (f Facing) Opposite() Facing { return (f + 2) % NumFacings }

// String returns the direction name; values outside the enumeration
// render as "Facing(?)".
func (f Facing) String() string {
	switch f {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return "Facing(?)"
}

// Coordinate addresses a cell by (Row, Col). Coordinates have no
// identity beyond their value and are never wrapped around grid edges.
type Coordinate struct {
	Row, Col int
}

// Step returns the coordinate one cell away in direction f.
// The result may be out of bounds; callers resolve that via Grid.At,
// which reports Wall for any coordinate outside the map.
func (c Coordinate) Step(f Facing) Coordinate {
	switch f {
	case North:
		return Coordinate{Row: c.Row - 1, Col: c.Col}
	case East:
		return Coordinate{Row: c.Row, Col: c.Col + 1}
	case South:
		return Coordinate{Row: c.Row + 1, Col: c.Col}
	default:
		return Coordinate{Row: c.Row, Col: c.Col - 1}
	}
}

// Neighbor pairs an adjacent open cell with the facing used to enter it.
type Neighbor struct {
	Dir  Facing
	Cell Coordinate
}
