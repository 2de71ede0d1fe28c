package generate

import (
	"fmt"
	"math/rand"

	"seed-maze/internal/gamemap"
)

// carveFrame is one level of the depth-first carve: a room plus the
// directions it has not tried yet.
type carveFrame struct {
	pos  gamemap.Position
	dirs [4]gamemap.Position
	next int
}

func newCarveFrame(pos gamemap.Position, rng *rand.Rand) carveFrame {
	f := carveFrame{pos: pos, dirs: gamemap.Directions}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// Carve builds a perfect maze over a rows×cols grid. Rooms sit on even
// coordinates starting at (0,0); odd cells between two rooms become
// passages when the walk crosses them. The bottom-right cell is always open
// and linked to the tree.
func Carve(rows, cols int, rng *rand.Rand) (*gamemap.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("carve %dx%d: %w", rows, cols, gamemap.ErrInvalidDimensions)
	}
	g := gamemap.New(rows, cols)
	carveFrom(g, gamemap.Position{}, rng)
	linkGoal(g)
	return g, nil
}

// carveFrom runs the backtracker with an explicit stack. Each room shuffles
// its directions once and resumes where it left off after a child returns.
func carveFrom(g *gamemap.Grid, start gamemap.Position, rng *rand.Rand) {
	g.Cells[start.Y][start.X] = gamemap.Open
	stack := []carveFrame{newCarveFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		room := gamemap.Position{X: top.pos.X + 2*d.X, Y: top.pos.Y + 2*d.Y}
		if !g.InBounds(room.X, room.Y) || g.IsOpen(room.X, room.Y) {
			continue
		}
		g.Cells[top.pos.Y+d.Y][top.pos.X+d.X] = gamemap.Open
		g.Cells[room.Y][room.X] = gamemap.Open
		stack = append(stack, newCarveFrame(room, rng))
	}
}

// linkGoal opens the bottom-right cell. On even dimensions that cell is off
// the room lattice, so it is joined through the one neighbour that touches
// a carved room.
func linkGoal(g *gamemap.Grid) {
	goal := gamemap.Position{X: g.Cols - 1, Y: g.Rows - 1}
	g.Cells[goal.Y][goal.X] = gamemap.Open
	if g.CountOpenNeighbors(goal.X, goal.Y) > 0 {
		return
	}
	for _, d := range gamemap.Directions {
		n := goal.Add(d)
		if !g.InBounds(n.X, n.Y) {
			continue
		}
		// goal plus exactly one room: opening n adds a leaf, never a cycle
		if g.CountOpenNeighbors(n.X, n.Y) == 2 {
			g.Cells[n.Y][n.X] = gamemap.Open
			return
		}
	}
}

// LoopBudget is the number of loop attempts made on a rows×cols grid.
func LoopBudget(rows, cols int) int {
	return rows * cols / 10
}

// AddLoops opens random interior walls that already touch at least two
// passages, creating alternate routes. It never closes a cell. Returns the
// number of walls opened.
func AddLoops(g *gamemap.Grid, rng *rand.Rand) int {
	if g.Rows < 3 || g.Cols < 3 {
		return 0
	}
	opened := 0
	for i := LoopBudget(g.Rows, g.Cols); i > 0; i-- {
		x := 1 + rng.Intn(g.Cols-2)
		y := 1 + rng.Intn(g.Rows-2)
		if g.IsOpen(x, y) || g.CountOpenNeighbors(x, y) < 2 {
			continue
		}
		g.Cells[y][x] = gamemap.Open
		opened++
	}
	return opened
}
