package generate

import "seed-maze/internal/gamemap"

// StartRegion returns the exclusive upper bounds of the near-origin area a
// start may be picked from.
func StartRegion(rows, cols int) (maxX, maxY int) {
	maxX = min(max(2, cols*2/5), cols)
	maxY = min(max(2, rows*2/5), rows)
	return maxX, maxY
}

// StartCandidates lists the eligible start cells in preference order.
// A cell needs at least three open neighbours. Above Easy, every full
// junction is pushed to the front as it is found, so the last junction
// scanned leads; the remaining cells keep row-major order.
func StartCandidates(g *gamemap.Grid, tier Tier) []gamemap.Position {
	maxX, maxY := StartRegion(g.Rows, g.Cols)
	var junctions, rest []gamemap.Position
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			if !g.IsOpen(x, y) {
				continue
			}
			branches := g.CountOpenNeighbors(x, y)
			if branches < 3 {
				continue
			}
			p := gamemap.Position{X: x, Y: y}
			if tier != Easy && branches == 4 {
				junctions = append([]gamemap.Position{p}, junctions...)
			} else {
				rest = append(rest, p)
			}
		}
	}
	return append(junctions, rest...)
}

// SelectStart picks the level's start cell, falling back to (0,0).
func SelectStart(g *gamemap.Grid, tier Tier) gamemap.Position {
	if c := StartCandidates(g, tier); len(c) > 0 {
		return c[0]
	}
	return gamemap.Position{}
}
