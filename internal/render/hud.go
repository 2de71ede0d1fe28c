package render

import (
	"fmt"
	"time"

	"seed-maze/internal/generate"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the status shown under the maze.
type HUD struct {
	Tier      generate.Tier
	Level     int // 0-based
	TimeLeft  time.Duration
	Collected int
	Total     int
	Message   string
}

// lowTime turns the clock red.
const lowTime = 5 * time.Second

// DrawHUD renders the status bar and message line at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("%s  Level %d  Seeds %d/%d  ", h.Tier, h.Level+1, h.Collected, h.Total)
	col := r.drawText(0, hudY+1, status, normalStyle)
	clockStyle := normalStyle
	if h.TimeLeft < lowTime {
		clockStyle = dangerStyle
	}
	r.drawText(col, hudY+1, "Time "+FormatClock(h.TimeLeft), clockStyle)

	if h.Message != "" {
		r.drawText(0, hudY+2, h.Message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
	r.drawText(0, hudY+3, "[arrows/hjkl/wasd] Move   [r] Restart   [Esc] Menu", dimStyle)
}

// FormatClock renders a duration as seconds with one decimal, never
// negative.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// DrawMenu renders the tier selection screen.
func (r *Renderer) DrawMenu(tiers []generate.Tier, selected int, message string) {
	r.screen.Clear()
	_, h := r.screen.Size()
	top := max(h/2-len(tiers)-3, 0)

	r.centerText(top, "SEED MAZE", titleStyle)
	r.centerText(top+1, "Collect every seed, then reach the flag before time runs out", dimStyle)
	for i, t := range tiers {
		tc := t.Config()
		line := fmt.Sprintf(" [%d] %-6s  %dx%d  %2d seeds ", i+1, t, tc.Rows, tc.Cols, tc.ItemCount)
		style := normalStyle
		if i == selected {
			style = highlightStyle
		}
		r.centerText(top+3+i*2, line, style)
	}
	hintY := top + 3 + len(tiers)*2
	r.centerText(hintY, "[up/down] Choose   [Enter] Play   [q] Quit", dimStyle)
	if message != "" {
		r.centerText(hintY+2, message, dangerStyle)
	}
}

// DrawEndScreen overlays the win or loss banner on the current frame.
func (r *Renderer) DrawEndScreen(won bool, level int) {
	_, h := r.screen.Size()
	y := h / 2
	if won {
		r.centerText(y-1, fmt.Sprintf("  LEVEL %d CLEARED  ", level+1), goodStyle.Background(tcell.ColorBlack))
		r.centerText(y+1, "  [Enter] Next level   [m] Menu   [q] Quit  ", normalStyle.Background(tcell.ColorBlack))
		return
	}
	r.centerText(y-1, "  TIME'S UP  ", dangerStyle.Background(tcell.ColorBlack))
	r.centerText(y+1, "  [r] Retry   [m] Menu   [q] Quit  ", normalStyle.Background(tcell.ColorBlack))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (r *Renderer) centerText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max((w-runewidth.StringWidth(text))/2, 0)
	r.drawText(x, y, text, style)
}
