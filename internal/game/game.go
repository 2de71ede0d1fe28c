package game

import (
	"fmt"
	"math/rand"
	"time"

	"seed-maze/internal/gamemap"
	"seed-maze/internal/generate"
	"seed-maze/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return fmt.Sprintf("GameState(%d)", uint8(s))
}

// DefaultTick is how often the clock on the HUD is refreshed.
const DefaultTick = 100 * time.Millisecond

// Game runs menu → playing → won/lost → retry on one screen. It owns the
// current level plan; nothing else holds a reference to it.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	rng      *rand.Rand
	now      func() time.Time
	log      zerolog.Logger
	tick     time.Duration

	state     GameState
	menuIndex int
	tier      generate.Tier
	level     int
	plan      *generate.LevelPlan
	player    gamemap.Position
	collected mapset.Set[gamemap.Position]
	deadline  time.Time
	left      time.Duration // frozen clock once the level is over
	message   string
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used to seed levels.
func WithRand(rng *rand.Rand) Option { return func(g *Game) { g.rng = rng } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(g *Game) { g.now = now } }

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(g *Game) { g.log = l } }

// WithTier preselects a tier on the menu. Unknown tiers are ignored.
func WithTier(t generate.Tier) Option {
	return func(g *Game) {
		if !t.Valid() {
			return
		}
		g.tier = t
		g.menuIndex = int(t)
	}
}

// WithTick sets the HUD refresh interval.
func WithTick(d time.Duration) Option { return func(g *Game) { g.tick = d } }

// New creates a Game drawing on an initialised screen.
func New(screen tcell.Screen, opts ...Option) *Game {
	g := &Game{
		screen:    screen,
		now:       time.Now,
		log:       zerolog.Nop(),
		tick:      DefaultTick,
		collected: mapset.New[gamemap.Position](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.now().UnixNano()))
	}
	g.renderer = render.NewRenderer(screen)
	return g
}

// State returns the current state.
func (g *Game) State() GameState { return g.state }

// Plan returns the level being played, or nil on the menu.
func (g *Game) Plan() *generate.LevelPlan { return g.plan }

// Run is the main loop. It returns when the player quits or the screen
// is finalised. The caller owns the screen and must Fini it.
func (g *Game) Run() {
	stop := make(chan struct{})
	defer close(stop)
	go g.ticker(stop)

	for {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventInterrupt:
			g.checkClock()
		case *tcell.EventKey:
			if !g.handleAction(keyToAction(ev)) {
				return
			}
		}
	}
}

// ticker wakes the event loop so the clock keeps moving without input.
func (g *Game) ticker(stop <-chan struct{}) {
	t := time.NewTicker(g.tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// handleAction applies one action and reports whether the game goes on.
func (g *Game) handleAction(a Action) bool {
	if a == ActionQuit {
		return false
	}
	switch g.state {
	case StateMenu:
		return g.menuAction(a)
	case StatePlaying:
		g.playAction(a)
	case StateWon:
		switch a {
		case ActionConfirm:
			g.startLevel(g.tier, g.level+1)
		case ActionMenu:
			g.toMenu()
		}
	case StateLost:
		switch a {
		case ActionRetry, ActionConfirm:
			g.startLevel(g.tier, g.level)
		case ActionMenu:
			g.toMenu()
		}
	}
	return true
}

func (g *Game) menuAction(a Action) bool {
	tiers := generate.Tiers()
	switch a {
	case ActionMoveN:
		g.menuIndex = (g.menuIndex - 1 + len(tiers)) % len(tiers)
	case ActionMoveS:
		g.menuIndex = (g.menuIndex + 1) % len(tiers)
	case ActionConfirm:
		g.startLevel(tiers[g.menuIndex], 0)
	case ActionTier1, ActionTier2, ActionTier3:
		idx := int(a - ActionTier1)
		if idx < len(tiers) {
			g.menuIndex = idx
			g.startLevel(tiers[idx], 0)
		}
	case ActionMenu:
		return false
	}
	return true
}

func (g *Game) playAction(a Action) {
	if g.checkClock() {
		return
	}
	switch a {
	case ActionRetry:
		g.startLevel(g.tier, g.level)
	case ActionMenu:
		g.toMenu()
	default:
		if d, ok := actionToDirection(a); ok {
			g.move(d)
		}
	}
}

// startLevel generates a fresh level with a new seed and starts the clock.
func (g *Game) startLevel(tier generate.Tier, level int) {
	seed := g.rng.Int63()
	plan, err := generate.Generate(&generate.Config{
		Tier:       tier,
		LevelIndex: level,
		Seed:       seed,
		Log:        &g.log,
	})
	if err != nil {
		g.log.Error().Err(err).Stringer("tier", tier).Int("level", level).Msg("generate level")
		g.toMenu()
		g.message = "Could not build that level."
		return
	}
	g.tier = tier
	g.level = level
	g.begin(plan)
	g.log.Info().
		Stringer("tier", tier).
		Int("level", level).
		Int64("seed", seed).
		Int("path", plan.PathLength).
		Dur("budget", plan.TimeBudget).
		Msg("level started")
}

// begin takes ownership of plan and puts the player on its start.
func (g *Game) begin(plan *generate.LevelPlan) {
	g.plan = plan
	g.player = plan.Start
	g.collected = mapset.New[gamemap.Position]()
	g.deadline = g.now().Add(plan.TimeBudget)
	g.state = StatePlaying
	g.message = fmt.Sprintf("Collect %d seeds, then reach the flag.", plan.Items.Size())
}

func (g *Game) toMenu() {
	g.state = StateMenu
	g.plan = nil
	g.message = ""
}

// move steps the player one cell if the target is open.
func (g *Game) move(d gamemap.Position) {
	next := g.player.Add(d)
	if !g.plan.Grid.IsOpen(next.X, next.Y) {
		return
	}
	g.player = next

	if g.plan.Items.Has(next) && !g.collected.Has(next) {
		g.collected.Put(next)
		g.message = fmt.Sprintf("Seed collected! %d left.", g.remaining())
	}
	if next != g.plan.Goal {
		return
	}
	if left := g.remaining(); left > 0 {
		g.message = fmt.Sprintf("The flag won't take you yet: %d seeds left.", left)
		return
	}
	g.left = g.TimeLeft()
	g.state = StateWon
	g.message = fmt.Sprintf("Cleared with %s to spare.", render.FormatClock(g.left))
	g.log.Info().Stringer("tier", g.tier).Int("level", g.level).Dur("left", g.left).Msg("level won")
}

func (g *Game) remaining() int {
	return g.plan.Items.Size() - g.collected.Size()
}

// checkClock ends the level when time has run out and reports whether it
// did.
func (g *Game) checkClock() bool {
	if g.state != StatePlaying || g.now().Before(g.deadline) {
		return false
	}
	g.left = 0
	g.state = StateLost
	g.message = "Out of time."
	g.log.Info().Stringer("tier", g.tier).Int("level", g.level).Int("collected", g.collected.Size()).Msg("level lost")
	return true
}

// TimeLeft is the time remaining on the current level, never negative.
func (g *Game) TimeLeft() time.Duration {
	switch {
	case g.plan == nil:
		return 0
	case g.state != StatePlaying:
		return g.left
	}
	return max(g.deadline.Sub(g.now()), 0)
}

func (g *Game) draw() {
	switch g.state {
	case StateMenu:
		g.renderer.DrawMenu(generate.Tiers(), g.menuIndex, g.message)
	default:
		g.renderer.DrawLevel(g.plan, g.player, g.collected)
		g.renderer.DrawHUD(render.HUD{
			Tier:      g.tier,
			Level:     g.level,
			TimeLeft:  g.TimeLeft(),
			Collected: g.collected.Size(),
			Total:     g.plan.Items.Size(),
			Message:   g.message,
		})
		if g.state != StatePlaying {
			g.renderer.DrawEndScreen(g.state == StateWon, g.level)
		}
	}
	g.screen.Show()
}
