package core

import (
	"math"
	"time"
)

// RuntimeConfig contains configuration passed to the game at initialization.
// The frontend computes the field size for the current display.
type RuntimeConfig struct {
	FieldW   int   // Field width in pixels
	FieldH   int   // Field height in pixels
	TickRate int   // Nominal simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic launches
}

// TickInterval returns the nominal duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Total    int  // Number of blocks on the field
	GameOver bool // Whether the game has ended (victory or failure)
	Victory  bool // Whether the game ended with every block destroyed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// FitField computes the field size for a viewport, keeping the full width.
// The height follows the viewport aspect ratio and never exceeds maxH:
//
//	h = min(floor(maxW * realH / realW), maxH), real = view * pixelRatio
//
// Degenerate viewports yield the maximum size.
func FitField(maxW, maxH int, viewW, viewH, pixelRatio float64) (int, int) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	realW := viewW * pixelRatio
	realH := viewH * pixelRatio
	if realW <= 0 || realH <= 0 {
		return maxW, maxH
	}
	h := int(math.Floor(float64(maxW) * realH / realW))
	return maxW, Min(h, maxH)
}
