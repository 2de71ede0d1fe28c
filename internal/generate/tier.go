package generate

import (
	"errors"
	"fmt"
	"strings"
)

// Tier identifies a difficulty configuration.
type Tier uint8

const (
	Easy Tier = iota
	Medium
	Hard
)

// ErrUnknownTier is returned by ParseTier for unrecognised names.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// TierConfig sizes one tier's levels.
type TierConfig struct {
	Rows, Cols int
	ItemCount  int
	Growth     int     // rows/cols added per won level
	TimeBuffer float64 // seconds added on top of the path-derived time
	Loops      bool    // open extra walls after carving
}

var tierTable = [...]TierConfig{
	Easy:   {Rows: 15, Cols: 15, ItemCount: 4, Growth: 0, TimeBuffer: 3.0},
	Medium: {Rows: 21, Cols: 21, ItemCount: 8, Growth: 1, TimeBuffer: 6.0, Loops: true},
	Hard:   {Rows: 31, Cols: 31, ItemCount: 15, Growth: 2, TimeBuffer: 12.0, Loops: true},
}

var tierNames = [...]string{
	Easy:   "EASY",
	Medium: "MEDIUM",
	Hard:   "HARD",
}

// Tiers returns every tier from easiest to hardest.
func Tiers() []Tier {
	return []Tier{Easy, Medium, Hard}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return int(t) < len(tierTable)
}

// Config returns a copy of the tier's configuration. Unknown tiers get Easy.
func (t Tier) Config() TierConfig {
	if !t.Valid() {
		return tierTable[Easy]
	}
	return tierTable[t]
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", uint8(t))
	}
	return tierNames[t]
}

// ParseTier maps a case-insensitive tier name to its Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers() {
		if strings.EqualFold(s, tierNames[t]) {
			return t, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Dimensions returns the grid size for the given level index.
func (c TierConfig) Dimensions(levelIndex int) (rows, cols int) {
	if levelIndex < 0 {
		levelIndex = 0
	}
	grow := c.Growth * levelIndex
	return c.Rows + grow, c.Cols + grow
}
