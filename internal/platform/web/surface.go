package web

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Glyph size of the debug font.
const (
	glyphW = 6
	glyphH = 16
)

var (
	clearColor  = color.Black
	bannerColor = color.RGBA{R: 16, G: 16, B: 32, A: 255}
)

// Surface draws the game onto an Ebitengine frame.
type Surface struct {
	store  *Store
	screen *ebiten.Image
}

// NewSurface creates a surface reading sprites from store.
func NewSurface(store *Store) *Surface {
	return &Surface{store: store}
}

// SetTarget sets the frame drawn into.
func (s *Surface) SetTarget(screen *ebiten.Image) {
	s.screen = screen
}

// ClearRect implements core.Surface.
func (s *Surface) ClearRect(r core.Rect) {
	s.fill(r, clearColor)
}

func (s *Surface) fill(r core.Rect, c color.Color) {
	sub, ok := s.screen.SubImage(imageRect(r)).(*ebiten.Image)
	if !ok {
		return
	}
	sub.Fill(c)
}

// DrawImage implements core.Surface.
func (s *Surface) DrawImage(sp core.Sprite, src *core.Rect, dst core.Rect) {
	img := s.store.Image(sp)
	if img == nil {
		return
	}
	if src != nil {
		sub, ok := img.SubImage(imageRect(*src)).(*ebiten.Image)
		if !ok {
			return
		}
		img = sub
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = placement(b.Dx(), b.Dy(), dst)
	s.screen.DrawImage(img, op)
}

// DrawText implements core.Surface.
func (s *Surface) DrawText(text string, x, y float64) {
	ebitenutil.DebugPrintAt(s.screen, text, int(x), int(y))
}

// DrawBanner implements core.Surface with a band across the middle of the
// frame.
func (s *Surface) DrawBanner(title, subtitle string) {
	b := s.screen.Bounds()
	w, h := b.Dx(), b.Dy()

	band := core.NewRect(0, float64(h/2-glyphH*2), float64(w), glyphH*4)
	s.fill(band, bannerColor)

	y := int(band.Y) + glyphH/2
	if title != "" {
		ebitenutil.DebugPrintAt(s.screen, title, centerX(title, w), y)
	}
	if subtitle != "" {
		ebitenutil.DebugPrintAt(s.screen, subtitle, centerX(subtitle, w), y+glyphH*2)
	}
}

// DrawPanel draws a titled box of text lines centered on the frame.
func (s *Surface) DrawPanel(title string, lines []string) {
	b := s.screen.Bounds()
	w, h := b.Dx(), b.Dy()

	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	pw := float64((width + 4) * glyphW)
	ph := float64((len(lines) + 4) * glyphH)
	panel := core.NewRect((float64(w)-pw)/2, (float64(h)-ph)/2, pw, ph)
	s.fill(panel, bannerColor)

	x := int(panel.X) + 2*glyphW
	y := int(panel.Y) + glyphH
	ebitenutil.DebugPrintAt(s.screen, title, centerX(title, w), y)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(s.screen, l, x, y+(i+2)*glyphH)
	}
}

// imageRect converts a field rectangle to integer pixels.
func imageRect(r core.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// placement scales a w x h image onto dst.
func placement(w, h int, dst core.Rect) ebiten.GeoM {
	var g ebiten.GeoM
	if w > 0 && h > 0 {
		g.Scale(dst.W/float64(w), dst.H/float64(h))
	}
	g.Translate(dst.X, dst.Y)
	return g
}

// centerX returns the x that centers text in the debug font on a frame
// of the given width.
func centerX(text string, width int) int {
	return max((width-len([]rune(text))*glyphW)/2, 0)
}
