// Package breakout implements the brick breaker: a ball, a paddle and a grid
// of blocks on a single screen. The game is driven by a frontend that feeds
// it time deltas and input, and draws it through a core.Surface.
package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

// Phase is the controller state.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the preload barrier
	PhaseReady                   // Field built, waiting for the first tick
	PhaseRunning                 // Game in progress
	PhaseVictory                 // Every block destroyed
	PhaseFailure                 // Ball passed the bottom edge
	PhaseLoadFailed              // Assets could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseVictory:
		return "victory"
	case PhaseFailure:
		return "failure"
	case PhaseLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is final. A finished game never
// resumes; a new Game is built instead.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseFailure || p == PhaseLoadFailed
}

// Game implements the brick breaker logic.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	audio   core.Audio
	rng     *RNG

	field    core.Rect
	ball     *Ball
	platform *Platform
	blocks   *BlockGrid

	phase   Phase
	paused  bool
	score   int
	tick    uint64
	loadErr error
}

// New creates a game waiting for its assets. A nil audio plays nothing.
func New(cfg config.Config, runtime core.RuntimeConfig, audio core.Audio) *Game {
	if audio == nil {
		audio = core.Mute{}
	}
	return &Game{
		cfg:     cfg,
		runtime: runtime,
		audio:   audio,
		rng:     NewRNG(runtime.Seed),
		field:   core.NewRect(0, 0, float64(runtime.FieldW), float64(runtime.FieldH)),
		phase:   PhaseLoading,
	}
}

// Preloaded receives the outcome of the preload barrier. A ready result
// builds the field; anything else fails the game with the reason kept.
// Only the first call has an effect.
func (g *Game) Preloaded(res preload.Result) {
	if g.phase != PhaseLoading {
		return
	}
	if !res.Ready() {
		g.loadErr = res.Err
		if g.loadErr == nil {
			g.loadErr = fmt.Errorf("breakout: loaded %d of %d assets", res.Loaded, res.Total)
		}
		g.phase = PhaseLoadFailed
		return
	}
	g.setup()
	g.phase = PhaseReady
}

// setup builds the entities at their starting positions.
func (g *Game) setup() {
	g.ball = NewBall(g.cfg.Ball, g.field)
	g.platform = NewPlatform(g.cfg.Platform, g.field)
	g.platform.Carry(g.ball)
	g.blocks = NewBlockGrid(g.cfg.Grid, g.field)
	g.score = 0
	g.tick = 0
	g.paused = false
}

// Step applies the input collected since the last tick and advances the
// game by dt.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseReady:
		g.phase = PhaseRunning
	case PhaseRunning:
	default:
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.update(dt)

	return core.StepResult{State: g.State()}
}

// applyInput translates input signals into entity commands.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if !g.paused {
		if in.Has(core.ActionLaunch) {
			g.platform.StartBall(g.rng)
		}
		for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
			if in.Has(a) {
				g.platform.Start(a)
			}
		}
	}

	// Releases apply even while paused so a key let go during the pause
	// does not leave the platform running.
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if in.HasReleased(a) && g.platform.Direction() == a.Direction() {
			g.platform.Stop()
		}
	}
}

// update runs one simulation tick in fixed order: blocks, platform hit,
// platform bounds, platform move, ball bounds, ball move.
func (g *Game) update(dt time.Duration) {
	if g.collideBallAndBlocks() {
		return
	}
	g.collideBallAndPlatform()

	g.platform.CollideBounds(dt)
	g.platform.Move(dt)

	if g.ball.CollideBounds() {
		g.finish(PhaseFailure)
		return
	}
	g.ball.Move(dt)
}

// collideBallAndBlocks destroys every active block the launched ball
// overlaps. It reports whether the last block went.
func (g *Game) collideBallAndBlocks() (won bool) {
	if !g.ball.Started {
		return false
	}
	for _, block := range g.blocks.Active() {
		if !Collide(g.ball, block) {
			continue
		}
		g.ball.BumpBlock(block)
		g.audio.Play(core.SoundHit)
		if g.addScore() {
			return true
		}
	}
	return false
}

// addScore counts a destroyed block and ends the game when none are left.
func (g *Game) addScore() (won bool) {
	g.score++
	if g.blocks.CountActive() == 0 {
		g.finish(PhaseVictory)
		return true
	}
	return false
}

func (g *Game) collideBallAndPlatform() {
	if !g.ball.Started || !Collide(g.ball, g.platform) {
		return
	}
	g.ball.BumpPlatform(g.platform, g.cfg.Ball.Steering)
	g.audio.Play(core.SoundBump)
}

// finish moves to a terminal phase. Only the first call has an effect.
func (g *Game) finish(p Phase) {
	if g.phase.Terminal() {
		return
	}
	g.phase = p
	g.platform.Stop()
	switch p {
	case PhaseVictory:
		g.audio.Play(core.SoundVictory)
	case PhaseFailure:
		g.audio.Play(core.SoundFail)
	}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Surface) {
	dst.ClearRect(g.field)

	switch g.phase {
	case PhaseLoading:
		dst.DrawBanner("Loading...", "")
		return
	case PhaseLoadFailed:
		dst.DrawBanner("Failed to load assets", errorText(g.loadErr))
		return
	}

	dst.DrawImage(core.SpriteBackground, nil, g.field)

	frame := core.NewRect(float64(g.ball.Frame)*g.ball.W, 0, g.ball.W, g.ball.H)
	dst.DrawImage(core.SpriteBall, &frame, g.ball.Rect)
	dst.DrawImage(core.SpritePlatform, nil, g.platform.Rect)

	for _, block := range g.blocks.Active() {
		dst.DrawImage(core.SpriteBlock, nil, block.Rect)
	}

	dst.DrawText(fmt.Sprintf("Score: %d", g.score), g.cfg.HUD.ScoreX, g.cfg.HUD.ScoreY)

	g.renderOverlay(dst)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst core.Surface) {
	switch {
	case g.phase == PhaseVictory:
		dst.DrawBanner("You win!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.phase == PhaseFailure:
		dst.DrawBanner("Game over", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.paused:
		dst.DrawBanner("Paused", "Press P to resume")
	case g.platform.Carrying() != nil:
		dst.DrawText("Press SPACE to launch", g.cfg.HUD.ScoreX, g.cfg.HUD.ScoreY*2)
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.phase.Terminal(),
		Victory:  g.phase == PhaseVictory,
		Paused:   g.paused,
	}
	if g.blocks != nil {
		st.Total = g.blocks.Len()
	}
	return st
}

// Phase returns the controller state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Running reports whether the game still needs ticks.
func (g *Game) Running() bool {
	return g.phase == PhaseReady || g.phase == PhaseRunning
}

// Err returns why loading failed, if it did.
func (g *Game) Err() error {
	return g.loadErr
}

// Field returns the playing field in pixels.
func (g *Game) Field() core.Rect {
	return g.field
}
