package breakout

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Platform is the player's paddle. It carries the ball until launch.
type Platform struct {
	core.Rect
	VX     float64
	Speed  float64
	Moving bool

	ball  *Ball
	field core.Rect
}

// NewPlatform places the platform centered horizontally, bottomOffset pixels
// above the field bottom.
func NewPlatform(cfg config.PlatformConfig, field core.Rect) *Platform {
	return &Platform{
		Rect:  core.NewRect(field.CenterX()-cfg.Width/2, field.Bottom()-cfg.BottomOffset, cfg.Width, cfg.Height),
		Speed: cfg.Speed,
		field: field,
	}
}

// Bounds implements Collidable.
func (p *Platform) Bounds() core.Rect {
	return p.Rect
}

// Carry attaches an unlaunched ball that moves along with the platform.
func (p *Platform) Carry(b *Ball) {
	p.ball = b
}

// Carrying returns the attached ball, or nil once launched.
func (p *Platform) Carrying() *Ball {
	return p.ball
}

// Start moves the platform left or right. Other actions are ignored.
func (p *Platform) Start(dir core.Action) {
	switch dir.Direction() {
	case -1:
		p.VX = -p.Speed
	case 1:
		p.VX = p.Speed
	default:
		return
	}
	p.Moving = true
}

// Stop halts the platform.
func (p *Platform) Stop() {
	p.VX = 0
	p.Moving = false
}

// Direction returns -1, 0 or 1 for the current movement.
func (p *Platform) Direction() int {
	switch {
	case !p.Moving || p.VX == 0:
		return 0
	case p.VX < 0:
		return -1
	default:
		return 1
	}
}

// Move advances a moving platform, never past the field edges.
func (p *Platform) Move(dt time.Duration) {
	if !p.Moving {
		return
	}
	p.moveTo(p.X + p.VX*dt.Seconds())
}

// CollideBounds stops the platform at the edge it would cross during the
// next move of dt.
func (p *Platform) CollideBounds(dt time.Duration) {
	if !p.Moving {
		return
	}
	next := p.X + p.VX*dt.Seconds()
	minX, maxX := p.field.X, p.field.Right()-p.W
	if next < minX || next > maxX {
		p.moveTo(next)
		p.Stop()
	}
}

// StartBall launches the carried ball and lets go of it.
func (p *Platform) StartBall(rng *RNG) bool {
	if p.ball == nil {
		return false
	}
	launched := p.ball.Start(rng)
	p.ball = nil
	return launched
}

func (p *Platform) moveTo(x float64) {
	x = core.ClampF(x, p.field.X, p.field.Right()-p.W)
	if p.ball != nil && !p.ball.Started {
		p.ball.X += x - p.X
	}
	p.X = x
}
