package breakout

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Movable is an entity that advances on its own each tick.
type Movable interface {
	Move(dt time.Duration)
}

// Collidable is an entity with a bounding box.
type Collidable interface {
	Bounds() core.Rect
}

// Collide reports whether two entities overlap.
func Collide(a, b Collidable) bool {
	return core.Collides(a.Bounds(), b.Bounds())
}
