package generate

import (
	"math/rand"

	"seed-maze/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// MaxItemAttempts bounds the number of draws PlaceItems makes.
const MaxItemAttempts = 1000

// PlaceItems scatters up to count collectibles over distinct open cells,
// skipping every position in exclude. When the draw budget runs out it
// returns what it has.
func PlaceItems(g *gamemap.Grid, count int, exclude []gamemap.Position, rng *rand.Rand) mapset.Set[gamemap.Position] {
	items := mapset.New[gamemap.Position]()
	open := g.OpenCells()
	if count <= 0 || len(open) == 0 {
		return items
	}

	skip := mapset.New[gamemap.Position]()
	for _, p := range exclude {
		skip.Put(p)
	}

	for attempt := 0; attempt < MaxItemAttempts && items.Size() < count; attempt++ {
		p := open[rng.Intn(len(open))]
		if skip.Has(p) || items.Has(p) {
			continue
		}
		items.Put(p)
	}
	return items
}
