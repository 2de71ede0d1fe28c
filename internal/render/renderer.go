package render

import (
	"seed-maze/internal/gamemap"
	"seed-maze/internal/generate"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zyedidia/generic/mapset"
)

// HUDHeight is the number of rows reserved at the bottom of the screen.
const HUDHeight = 4

const (
	playerGlyph = "●"
	itemGlyph   = "✦"
	goalGlyph   = "⚑"
)

// Renderer draws maze levels and menus onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, max(h-HUDHeight, 1))
}

// Camera exposes the current viewport.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawLevel clears the screen and draws the maze, the goal, the items not
// yet collected and the player.
func (r *Renderer) DrawLevel(plan *generate.LevelPlan, player gamemap.Position, collected mapset.Set[gamemap.Position]) {
	r.screen.Clear()
	pal := PaletteFor(plan.LevelIndex)
	g := plan.Grid
	r.camera.Frame(g.Rows, g.Cols, player.X, player.Y)

	wall := tcell.StyleDefault.Background(pal.Wall)
	path := tcell.StyleDefault.Background(pal.Path)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			sx, sy, ok := r.camera.WorldToScreen(x, y)
			if !ok {
				continue
			}
			style := wall
			if g.IsOpen(x, y) {
				style = path
			}
			r.screen.SetContent(sx, sy, ' ', nil, style)
			r.screen.SetContent(sx+1, sy, ' ', nil, style)
		}
	}

	r.drawCell(plan.Goal, goalGlyph, path.Foreground(pal.Goal))
	plan.Items.Each(func(p gamemap.Position) {
		if !collected.Has(p) {
			r.drawCell(p, itemGlyph, path.Foreground(pal.Item))
		}
	})
	r.drawCell(player, playerGlyph, path.Foreground(pal.Player))
}

func (r *Renderer) drawCell(p gamemap.Position, glyph string, style tcell.Style) {
	sx, sy, ok := r.camera.WorldToScreen(p.X, p.Y)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a glyph into a two-column cell at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
