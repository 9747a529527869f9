package breakout

import "math"

// Snapshot contains the complete game state for determinism tests.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Paused bool
	Score  int

	BallX, BallY   float64
	BallVX, BallVY float64
	BallFrame      int
	BallStarted    bool

	PlatformX      float64
	PlatformVX     float64
	PlatformMoving bool
	Carrying       bool

	// Active flags, row-major
	Blocks []bool

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Paused:   g.paused,
		Score:    g.score,
		RNGState: g.rng.state,
	}
	if g.ball == nil {
		return snap
	}

	snap.BallX, snap.BallY = g.ball.X, g.ball.Y
	snap.BallVX, snap.BallVY = g.ball.VX, g.ball.VY
	snap.BallFrame = g.ball.Frame
	snap.BallStarted = g.ball.Started

	snap.PlatformX = g.platform.X
	snap.PlatformVX = g.platform.VX
	snap.PlatformMoving = g.platform.Moving
	snap.Carrying = g.platform.Carrying() != nil

	snap.Blocks = make([]bool, g.blocks.Len())
	g.blocks.Each(func(i int, b *Block) {
		snap.Blocks[i] = b.Active
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}

	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + b(snap.Paused)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BallFrame) //#nosec G115 -- hash computation
	h = h*31 + b(snap.BallStarted)
	h = h*31 + math.Float64bits(snap.PlatformX)
	h = h*31 + math.Float64bits(snap.PlatformVX)
	h = h*31 + b(snap.PlatformMoving)
	h = h*31 + b(snap.Carrying)

	for _, v := range snap.Blocks {
		h = h*31 + b(v)
	}

	h = h*31 + snap.RNGState

	return h
}
