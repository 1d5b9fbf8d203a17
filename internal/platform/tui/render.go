package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

// Visual characters for rendering
const (
	GroundChar = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// FrameRenderer paints a game frame into a screen buffer.
type FrameRenderer interface {
	Render(dst *core.Screen, f dino.Frame)
}

// SheetRenderer draws frames with sprites from a sheet.
// The logical board is stretched over every row but the last, which holds the ground line.
type SheetRenderer struct {
	sheet sprites.Sheet
}

// NewSheetRenderer creates a renderer using sheet.
func NewSheetRenderer(sheet sprites.Sheet) *SheetRenderer {
	return &SheetRenderer{sheet: sheet}
}

// Render draws the ground, obstacles, player, and score overlay.
func (r *SheetRenderer) Render(dst *core.Screen, f dino.Frame) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || f.Board.W <= 0 || f.Board.H <= 0 {
		return
	}

	vp := viewport{cols: dst.Width(), rows: dst.Height() - 1, board: f.Board}

	dst.DrawHLine(0, vp.rows, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range f.Obstacles {
		r.drawEntity(dst, vp, o)
	}
	r.drawEntity(dst, vp, f.Player)

	for i, line := range f.Overlay() {
		dst.DrawText(1, i, line)
	}

	if f.GameOver {
		drawCenteredMessage(dst, "GAME OVER", "Press Space to restart")
	}
}

func (r *SheetRenderer) drawEntity(dst *core.Screen, vp viewport, e dino.Entity) {
	sp := r.sheet.Sprite(e.Sprite)
	cells := vp.rect(e.Rect)

	if artW, artH := artSize(sp.Art); artH > 0 && artW <= cells.W && artH <= cells.H {
		top := cells.Bottom() - artH
		for dy, line := range sp.Art {
			dx := 0
			for _, ch := range line {
				if ch != ' ' {
					dst.SetColor(cells.X+dx, top+dy, ch, sp.Color)
				}
				dx++
			}
		}
		return
	}

	dst.DrawRectColor(cells, sp.Fill, sp.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func artSize(art []string) (w, h int) {
	for _, line := range art {
		w = core.Max(w, len([]rune(line)))
	}
	return w, len(art)
}

// viewport maps logical board coordinates to terminal cells.
type viewport struct {
	cols, rows int
	board      core.Rect
}

// rect returns the cells covered by r; every visible entity covers at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*v.cols, v.board.W)
	x1 := ceilDiv(r.Right()*v.cols, v.board.W)
	y0 := floorDiv(r.Y*v.rows, v.board.H)
	y1 := ceilDiv(r.Bottom()*v.rows, v.board.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
