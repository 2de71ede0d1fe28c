// mazegen prints a generated level without starting the game. Useful for
// checking what a seed produces and how the time budget scales.
//
// Usage:
//
//	go run ./cmd/mazegen -tier medium -level 3 -seed 42
//	go run ./cmd/mazegen -tier hard -json
package main

import (
	"cmp"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"seed-maze/internal/config"
	"seed-maze/internal/gamemap"
	"seed-maze/internal/generate"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tierName := fs.String("tier", cfg.Tier.String(), "Difficulty tier (easy, medium, hard)")
	level := fs.Int("level", 0, "Zero-based level index")
	seed := fs.Int64("seed", 1, "Generator seed")
	asJSON := fs.Bool("json", false, "Print the level as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tier, err := generate.ParseTier(*tierName)
	if err != nil {
		return err
	}
	log := cfg.ConsoleLogger(stderr)
	plan, err := generate.Generate(&generate.Config{
		Tier:       tier,
		LevelIndex: *level,
		Seed:       *seed,
		Log:        &log,
	})
	if err != nil {
		return err
	}
	log.Debug().Int64("seed", *seed).Msg("printing level")

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newPlanDoc(plan))
	}
	_, err = io.WriteString(stdout, drawPlan(plan)+summary(plan))
	return err
}

// planDoc is the JSON shape of a level.
type planDoc struct {
	Tier       string             `json:"tier"`
	Level      int                `json:"level"`
	Seed       int64              `json:"seed"`
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Start      gamemap.Position   `json:"start"`
	Goal       gamemap.Position   `json:"goal"`
	Items      []gamemap.Position `json:"items"`
	PathLength int                `json:"pathLength"`
	Budget     float64            `json:"timeBudgetSeconds"`
	Loops      int                `json:"loops"`
	Reachable  int                `json:"reachable"`
	Grid       []string           `json:"grid"`
}

func newPlanDoc(p *generate.LevelPlan) planDoc {
	return planDoc{
		Tier:       p.Tier.String(),
		Level:      p.LevelIndex,
		Seed:       p.Seed,
		Rows:       p.Grid.Rows,
		Cols:       p.Grid.Cols,
		Start:      p.Start,
		Goal:       p.Goal,
		Items:      sortedItems(p),
		PathLength: p.PathLength,
		Budget:     p.TimeBudget.Seconds(),
		Loops:      p.Loops,
		Reachable:  gamemap.Reachable(p.Grid, p.Start),
		Grid:       strings.Split(strings.TrimSuffix(p.Grid.String(), "\n"), "\n"),
	}
}

func sortedItems(p *generate.LevelPlan) []gamemap.Position {
	items := make([]gamemap.Position, 0, p.Items.Size())
	p.Items.Each(func(pos gamemap.Position) { items = append(items, pos) })
	slices.SortFunc(items, func(a, b gamemap.Position) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return items
}

// drawPlan renders the grid with S for start, G for goal and * for items.
func drawPlan(p *generate.LevelPlan) string {
	lines := strings.Split(strings.TrimSuffix(p.Grid.String(), "\n"), "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	p.Items.Each(func(pos gamemap.Position) { rows[pos.Y][pos.X] = '*' })
	rows[p.Goal.Y][p.Goal.X] = 'G'
	rows[p.Start.Y][p.Start.X] = 'S'

	var b strings.Builder
	for _, r := range rows {
		b.Write(r)
		b.WriteByte('\n')
	}
	return b.String()
}

func summary(p *generate.LevelPlan) string {
	path := fmt.Sprint(p.PathLength)
	if p.PathLength == gamemap.Unreachable {
		path = "unreachable"
	}
	return fmt.Sprintf("\ntier %s  level %d  seed %d  %dx%d\nstart %d,%d  goal %d,%d  path %s  items %d  reachable %d  loops %d\nbudget %.2fs\n",
		p.Tier, p.LevelIndex, p.Seed, p.Grid.Cols, p.Grid.Rows,
		p.Start.X, p.Start.Y, p.Goal.X, p.Goal.Y, path, p.Items.Size(), gamemap.Reachable(p.Grid, p.Start), p.Loops,
		p.TimeBudget.Seconds())
}
