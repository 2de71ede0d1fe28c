package gamemap

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive number of rows or columns.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// BoundsError reports an access outside [0,cols)×[0,rows).
type BoundsError struct {
	X, Y       int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) outside %dx%d grid", e.X, e.Y, e.Rows, e.Cols)
}

// Position is a cell coordinate; X is the column and Y the row.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Position) Position {
	return Position{p.X + d.X, p.Y + d.Y}
}

// Up, Right, Down and Left are the unit moves of the 4-neighbourhood.
var (
	Up    = Position{0, -1}
	Right = Position{1, 0}
	Down  = Position{0, 1}
	Left  = Position{-1, 0}
)

// Directions lists the four axis-aligned unit moves. Callers that need a
// random order must copy it before shuffling.
var Directions = [4]Position{Up, Right, Down, Left}

// Grid is a rows×cols array of cells for one maze level.
type Grid struct {
	Rows, Cols int
	Cells      [][]Cell
}

// New creates a Grid filled with walls.
func New(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// IsOpen returns true when (x, y) is in bounds and open.
func (g *Grid) IsOpen(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[y][x] == Open
}

// SetOpen turns (x, y) into a passage.
func (g *Grid) SetOpen(x, y int) error {
	if !g.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Rows: g.Rows, Cols: g.Cols}
	}
	g.Cells[y][x] = Open
	return nil
}

// CountOpenNeighbors counts the open cells among the four orthogonal
// neighbours of (x, y).
func (g *Grid) CountOpenNeighbors(x, y int) int {
	n := 0
	for _, d := range Directions {
		if g.IsOpen(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Position {
	var out []Position
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] == Open {
				out = append(out, Position{x, y})
			}
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := New(g.Rows, g.Cols)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] == Open {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
