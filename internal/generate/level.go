package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"seed-maze/internal/gamemap"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidLevel is returned for a negative level index.
var ErrInvalidLevel = errors.New("invalid level index")

// LevelPlan is everything the game needs to run one level. The caller owns
// it; nothing in this package keeps a reference.
type LevelPlan struct {
	Grid       *gamemap.Grid
	Start      gamemap.Position
	Goal       gamemap.Position
	Items      mapset.Set[gamemap.Position]
	PathLength int // shortest start→goal moves, or gamemap.Unreachable
	TimeBudget time.Duration
	Tier       Tier
	LevelIndex int
	Seed       int64 // zero when the level came from an injected Rand
	Loops      int   // walls opened by loop augmentation
}

// Config drives generation of one level.
type Config struct {
	Tier       Tier
	LevelIndex int
	Seed       int64      // used to seed Rand when Rand is nil
	Rand       *rand.Rand // optional
	Log        *zerolog.Logger
}

func (cfg *Config) logger() *zerolog.Logger {
	if cfg.Log != nil {
		return cfg.Log
	}
	nop := zerolog.Nop()
	return &nop
}

// Generate carves a maze, picks start and goal, calibrates the time budget
// from the shortest route and scatters the tier's items.
func Generate(cfg *Config) (*LevelPlan, error) {
	if cfg.LevelIndex < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, cfg.LevelIndex)
	}
	if !cfg.Tier.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTier, cfg.Tier)
	}
	rng, seed := cfg.Rand, int64(0)
	if rng == nil {
		rng, seed = rand.New(rand.NewSource(cfg.Seed)), cfg.Seed
	}
	log := cfg.logger()

	tc := cfg.Tier.Config()
	rows, cols := tc.Dimensions(cfg.LevelIndex)
	grid, err := Carve(rows, cols, rng)
	if err != nil {
		return nil, fmt.Errorf("generate %v level %d: %w", cfg.Tier, cfg.LevelIndex, err)
	}
	loops := 0
	if tc.Loops {
		loops = AddLoops(grid, rng)
	}

	start := SelectStart(grid, cfg.Tier)
	goal := gamemap.Position{X: cols - 1, Y: rows - 1}

	pathLen := gamemap.ShortestPath(grid, start, goal)
	budget := calibrate(pathLen, cfg.Tier, cfg.LevelIndex, log)

	items := PlaceItems(grid, tc.ItemCount, []gamemap.Position{start, goal}, rng)
	if items.Size() < tc.ItemCount {
		log.Debug().Int("placed", items.Size()).Int("wanted", tc.ItemCount).Msg("item placement ran out of attempts")
	}

	log.Debug().
		Stringer("tier", cfg.Tier).
		Int("level", cfg.LevelIndex).
		Int("rows", rows).
		Int("cols", cols).
		Int("loops", loops).
		Int("path", pathLen).
		Dur("budget", budget).
		Msg("level generated")

	return &LevelPlan{
		Grid:       grid,
		Start:      start,
		Goal:       goal,
		Items:      items,
		PathLength: pathLen,
		TimeBudget: budget,
		Tier:       cfg.Tier,
		LevelIndex: cfg.LevelIndex,
		Seed:       seed,
		Loops:      loops,
	}, nil
}

// calibrate turns a measured path length into the level's time budget. An
// unreachable goal is budgeted as FallbackPathLength moves.
func calibrate(pathLen int, tier Tier, levelIndex int, log *zerolog.Logger) time.Duration {
	if pathLen == gamemap.Unreachable {
		log.Warn().
			Stringer("tier", tier).
			Int("level", levelIndex).
			Msg("goal unreachable from start, using fallback path length")
		pathLen = FallbackPathLength
	}
	return TimeBudget(pathLen, tier, levelIndex)
}

// NewLevel generates a level from a seed alone. Equal arguments give equal
// plans.
func NewLevel(tier Tier, levelIndex int, seed int64) (*LevelPlan, error) {
	return Generate(&Config{Tier: tier, LevelIndex: levelIndex, Seed: seed})
}
