package gamemap

// Unreachable is returned by ShortestPath when no route exists.
const Unreachable = -1

// ShortestPath returns the minimum number of moves from start to goal over
// open cells, or Unreachable.
func ShortestPath(g *Grid, start, goal Position) int {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return Unreachable
	}
	if start == goal {
		return 0
	}

	dist := make([][]int, g.Rows)
	for y := range dist {
		dist[y] = make([]int, g.Cols)
		for x := range dist[y] {
			dist[y][x] = Unreachable
		}
	}
	dist[start.Y][start.X] = 0
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := cur.Add(d)
			if !g.IsOpen(next.X, next.Y) || dist[next.Y][next.X] != Unreachable {
				continue
			}
			dist[next.Y][next.X] = dist[cur.Y][cur.X] + 1
			if next == goal {
				return dist[next.Y][next.X]
			}
			queue = append(queue, next)
		}
	}
	return Unreachable
}

// Reachable counts the open cells connected to from, including from itself.
// A closed or out-of-bounds origin reaches nothing.
func Reachable(g *Grid, from Position) int {
	if !g.IsOpen(from.X, from.Y) {
		return 0
	}
	visited := make([][]bool, g.Rows)
	for y := range visited {
		visited[y] = make([]bool, g.Cols)
	}
	visited[from.Y][from.X] = true
	queue := []Position{from}
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			next := cur.Add(d)
			if g.IsOpen(next.X, next.Y) && !visited[next.Y][next.X] {
				visited[next.Y][next.X] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}
