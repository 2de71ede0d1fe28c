package render

import "github.com/gdamore/tcell/v2"

// Palette holds the colours for one maze theme.
type Palette struct {
	Name       string
	Background tcell.Color
	Wall       tcell.Color
	Path       tcell.Color
	Player     tcell.Color
	Item       tcell.Color
	Goal       tcell.Color
}

// Palettes rotate by level so consecutive levels look different. Each keeps
// the item colour well apart from both wall and path.
var Palettes = [...]Palette{
	{
		Name:       "Classic",
		Background: tcell.ColorBlack,
		Wall:       tcell.NewRGBColor(20, 20, 20),
		Path:       tcell.ColorWhite,
		Player:     tcell.NewRGBColor(0, 255, 0),
		Item:       tcell.NewRGBColor(255, 215, 0),
		Goal:       tcell.NewRGBColor(255, 0, 0),
	},
	{
		Name:       "Neon",
		Background: tcell.NewRGBColor(20, 0, 30),
		Wall:       tcell.NewRGBColor(75, 0, 130),
		Path:       tcell.NewRGBColor(220, 255, 255),
		Player:     tcell.NewRGBColor(255, 255, 0),
		Item:       tcell.NewRGBColor(255, 20, 147),
		Goal:       tcell.NewRGBColor(255, 0, 0),
	},
	{
		Name:       "Desert",
		Background: tcell.NewRGBColor(50, 20, 0),
		Wall:       tcell.NewRGBColor(80, 40, 0),
		Path:       tcell.NewRGBColor(255, 230, 200),
		Player:     tcell.NewRGBColor(0, 0, 255),
		Item:       tcell.NewRGBColor(200, 0, 0),
		Goal:       tcell.NewRGBColor(0, 128, 0),
	},
}

// PaletteFor returns the palette used for the given level index.
func PaletteFor(levelIndex int) Palette {
	if levelIndex < 0 {
		levelIndex = 0
	}
	return Palettes[levelIndex%len(Palettes)]
}

var (
	titleStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
	normalStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(70, 130, 180))
	dangerStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 60, 60)).Bold(true)
	goodStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0)).Bold(true)
)
