package breakout

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

const tick = time.Second / 60

// recorder is an Audio that remembers what was played.
type recorder struct {
	played []core.Sound
}

func (r *recorder) Play(s core.Sound) {
	r.played = append(r.played, s)
}

func (r *recorder) count(s core.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// surface is a Surface that records draw calls.
type surface struct {
	cleared []core.Rect
	images  []core.Sprite
	sources []*core.Rect
	texts   []string
	banners []string
}

func (s *surface) ClearRect(r core.Rect) {
	s.cleared = append(s.cleared, r)
}

func (s *surface) DrawImage(sp core.Sprite, src *core.Rect, dst core.Rect) {
	s.images = append(s.images, sp)
	s.sources = append(s.sources, src)
}

func (s *surface) DrawText(text string, x, y float64) {
	s.texts = append(s.texts, text)
}

func (s *surface) DrawBanner(title, subtitle string) {
	s.banners = append(s.banners, fmt.Sprintf("%s|%s", title, subtitle))
}

func (s *surface) countImages(sp core.Sprite) int {
	n := 0
	for _, i := range s.images {
		if i == sp {
			n++
		}
	}
	return n
}

func testField() core.Rect {
	return core.NewRect(0, 0, 1280, 720)
}

// newTestGame returns a loaded game on a 1280x720 field.
func newTestGame(t *testing.T, mutate func(*config.Config)) (*Game, *recorder) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &recorder{}
	g := New(cfg, cfg.Runtime(1280, 720, 42), rec)
	g.Preloaded(preload.Result{Loaded: 8, Total: 8})
	if g.Phase() != PhaseReady {
		t.Fatalf("phase after preload = %v, expected ready", g.Phase())
	}
	return g, rec
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func release(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
