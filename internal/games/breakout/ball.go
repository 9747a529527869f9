package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Ball is the ball. Velocity is in pixels per second.
type Ball struct {
	core.Rect
	VX, VY  float64
	Speed   float64
	Frame   int // Current animation frame
	Frames  int
	Started bool

	field core.Rect
}

// NewBall places an unlaunched ball centered horizontally, spawnOffset
// pixels above the field bottom.
func NewBall(cfg config.BallConfig, field core.Rect) *Ball {
	return &Ball{
		Rect:   core.NewRect(field.CenterX()-cfg.Width/2, field.Bottom()-cfg.SpawnOffset, cfg.Width, cfg.Height),
		Speed:  cfg.Speed,
		Frames: max(cfg.Frames, 1),
		field:  field,
	}
}

// Bounds implements Collidable.
func (b *Ball) Bounds() core.Rect {
	return b.Rect
}

// Move advances a launched ball and steps the animation. The animation runs
// even before launch.
func (b *Ball) Move(dt time.Duration) {
	if b.Started {
		s := dt.Seconds()
		b.X += b.VX * s
		b.Y += b.VY * s
	}
	b.Frame = (b.Frame + 1) % b.Frames
}

// CollideBounds reflects the ball off the left, right and top edges and
// reports whether it reached the bottom edge.
// A reflection only happens while moving toward the edge, and the ball is
// put back inside, so one touch flips the velocity once.
func (b *Ball) CollideBounds() (missed bool) {
	switch {
	case b.X <= b.field.X && b.VX < 0:
		b.VX = -b.VX
		b.X = b.field.X
	case b.Right() >= b.field.Right() && b.VX > 0:
		b.VX = -b.VX
		b.X = b.field.Right() - b.W
	}
	if b.Y <= b.field.Y && b.VY < 0 {
		b.VY = -b.VY
		b.Y = b.field.Y
	}
	return b.Bottom() >= b.field.Bottom()
}

// BumpBlock bounces the ball vertically off a block and destroys the block.
// The ball is sent away from the block's vertical center, so two blocks hit
// in the same tick do not cancel each other out.
func (b *Ball) BumpBlock(block *Block) {
	if b.CenterY() < block.CenterY() {
		b.VY = -math.Abs(b.VY)
	} else {
		b.VY = math.Abs(b.VY)
	}
	block.Active = false
}

// BumpPlatform bounces the ball up off the platform. With steering, the
// horizontal speed follows where the ball struck: the platform edges send
// it off at full speed, the middle straight up.
func (b *Ball) BumpPlatform(p *Platform, steering bool) {
	b.VY = -math.Abs(b.VY)
	if !steering {
		return
	}
	offset := (b.CenterX() - p.CenterX()) / (p.W / 2)
	b.VX = b.Speed * core.ClampF(offset, -1, 1)
}

// Start launches the ball upward with a random horizontal speed in
// [-Speed, Speed]. It does nothing once the ball is started.
func (b *Ball) Start(rng *RNG) bool {
	if b.Started {
		return false
	}
	b.Started = true
	b.VX = rng.Range(-b.Speed, b.Speed)
	b.VY = -b.Speed
	return true
}
