package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Glyphs used to draw sprites in cells.
const (
	BallChar     = '●'
	PlatformChar = '▀'
	BlockChar    = '█'
)

// Surface draws the game onto a cell Screen, scaling field pixels to cells.
// The background sprite has no terminal rendering; cleared cells are blank.
type Surface struct {
	screen *core.Screen
	field  core.Rect
}

// NewSurface creates a surface mapping field onto screen.
func NewSurface(screen *core.Screen, field core.Rect) *Surface {
	return &Surface{screen: screen, field: field}
}

// scale returns cells per pixel on both axes.
func (s *Surface) scale() (sx, sy float64) {
	if s.field.W <= 0 || s.field.H <= 0 {
		return 0, 0
	}
	return float64(s.screen.Width()) / s.field.W, float64(s.screen.Height()) / s.field.H
}

// cellRect converts a field rectangle to cells. Non-empty rectangles cover
// at least one cell.
func (s *Surface) cellRect(r core.Rect) (x, y, w, h int) {
	sx, sy := s.scale()
	x = int(math.Round((r.X - s.field.X) * sx))
	y = int(math.Round((r.Y - s.field.Y) * sy))
	w = max(int(math.Round((r.Right()-s.field.X)*sx))-x, 1)
	h = max(int(math.Round((r.Bottom()-s.field.Y)*sy))-y, 1)
	return x, y, w, h
}

// cellPoint converts a field point to the cell containing it.
func (s *Surface) cellPoint(px, py float64) (x, y int) {
	sx, sy := s.scale()
	return int(math.Floor((px - s.field.X) * sx)), int(math.Floor((py - s.field.Y) * sy))
}

// ClearRect implements core.Surface.
func (s *Surface) ClearRect(r core.Rect) {
	x, y, w, h := s.cellRect(r)
	s.screen.DrawRect(x, y, w, h, ' ', core.ColorDefault)
}

// DrawImage implements core.Surface. The source rectangle selects an
// animation frame, which cells cannot show, so it is ignored.
func (s *Surface) DrawImage(sp core.Sprite, _ *core.Rect, dst core.Rect) {
	switch sp {
	case core.SpriteBall:
		x, y := s.cellPoint(dst.CenterX(), dst.CenterY())
		s.screen.SetCell(x, y, BallChar, core.ColorYellow)
	case core.SpritePlatform:
		x, y, w, _ := s.cellRect(dst)
		s.screen.DrawRect(x, y, w, 1, PlatformChar, core.ColorCyan)
	case core.SpriteBlock:
		x, y, w, h := s.cellRect(dst)
		if w > 2 {
			w-- // Keep a gap to the neighbor
		}
		color := core.BlockColors[core.Abs(y)%len(core.BlockColors)]
		s.screen.DrawRect(x, y, w, h, BlockChar, color)
	}
}

// DrawText implements core.Surface.
func (s *Surface) DrawText(text string, px, py float64) {
	x, y := s.cellPoint(px, py)
	s.screen.DrawTextColor(x, y, text, core.ColorWhite)
}

// DrawBanner implements core.Surface with a centered box.
func (s *Surface) DrawBanner(title, subtitle string) {
	w := s.screen.Width()
	h := s.screen.Height()

	boxW := min(max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle))+4, w)
	boxH := 5
	if title == "" || subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	s.screen.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	s.screen.DrawBox(boxX, boxY, boxW, boxH)

	row := boxY + 1
	if title != "" {
		s.screen.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(title))/2, row, title, core.ColorYellow)
		row += 2
	}
	if subtitle != "" {
		s.screen.DrawText(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, row, subtitle)
	}
}
