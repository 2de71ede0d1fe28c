package generate

import "time"

const (
	// PaceCellsPerSecond is how many cells of the shortest route one
	// second of budget pays for.
	PaceCellsPerSecond = 3.5
	// BufferDecayPerLevel shrinks a tier's buffer each level.
	BufferDecayPerLevel = 0.07
	// FallbackPathLength stands in for an unreachable goal.
	FallbackPathLength = 50
)

// TimeBudgetSeconds is the time allowed for a level whose shortest route
// is pathLen moves: the travel time at PaceCellsPerSecond plus the tier's
// buffer, which decays by BufferDecayPerLevel per level and stops at zero.
func TimeBudgetSeconds(pathLen int, tier Tier, levelIndex int) float64 {
	pathLen = max(pathLen, 0)
	levelIndex = max(levelIndex, 0)
	base := float64(pathLen) / PaceCellsPerSecond
	buffer := max(0, tier.Config().TimeBuffer-float64(levelIndex)*BufferDecayPerLevel)
	return base + buffer
}

// TimeBudget is TimeBudgetSeconds as a Duration.
func TimeBudget(pathLen int, tier Tier, levelIndex int) time.Duration {
	return time.Duration(TimeBudgetSeconds(pathLen, tier, levelIndex) * float64(time.Second))
}
