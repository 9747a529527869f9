package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/logging"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

// Options configures a window session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Loader  preload.Loader
	Store   *Store
	Logger  *log.Logger
	Title   string
}

// inputState reads key edges from Ebitengine.
type inputState struct{}

func (inputState) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inputState) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Game adapts breakout.Game to ebiten.Game.
type Game struct {
	opts     Options
	manifest preload.Manifest
	fixed    bool

	game    *breakout.Game
	phase   breakout.Phase
	loaded  *preload.Result
	results chan preload.Result
	surface *Surface
	clock   *core.FrameClock
	input   core.InputFrame
	keys    KeyState
	now     func() time.Time

	showHelp   bool
	helpPaused bool // The help panel paused the game
}

// NewGame creates the adapter and starts loading assets in the background.
func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	fixed := opts.Runtime.Seed != 0
	if !fixed {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	g := &Game{
		opts:     opts,
		manifest: preload.NewManifest(opts.Config.Assets),
		fixed:    fixed,
		surface:  NewSurface(opts.Store),
		clock:    core.NewFrameClock(opts.Runtime.TickRate, opts.Config.Loop.MaxFrameDelta),
		input:    core.NewInputFrame(),
		keys:     inputState{},
		now:      time.Now,
	}
	g.newRound()
	return g
}

// newRound builds a fresh game, preloading first unless assets are in.
func (g *Game) newRound() {
	g.game = breakout.New(g.opts.Config, g.opts.Runtime, g.opts.Store)
	g.phase = g.game.Phase()
	g.clock.Reset()
	g.showHelp, g.helpPaused = false, false
	if g.loaded != nil {
		g.game.Preloaded(*g.loaded)
		g.observe()
		return
	}

	g.results = make(chan preload.Result, 1)
	go func(ch chan<- preload.Result) {
		ch <- preload.Preload(context.Background(), g.manifest, g.opts.Loader, preload.Options{
			Timeout: g.opts.Config.Assets.LoadTimeout,
			OnProgress: func(p preload.Progress) {
				g.opts.Logger.Debug("asset loaded", "asset", p.Asset.Path, "loaded", p.Loaded, "total", p.Total)
			},
		})
	}(g.results)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.receive()

	Poll(g.keys, DefaultBindings, &g.input)
	defer g.input.Clear()

	// While the help is open only the keys that leave it get through.
	if g.showHelp {
		for a := range g.input.Pressed {
			if a != core.ActionQuit && a != core.ActionHelp && a != core.ActionBack {
				delete(g.input.Pressed, a)
			}
		}
	}

	if g.input.Has(core.ActionQuit) {
		g.opts.Logger.Info("quit", "score", g.game.State().Score)
		return ebiten.Termination
	}
	switch {
	case g.input.Has(core.ActionHelp):
		g.toggleHelp()
	case g.input.Has(core.ActionBack) && g.showHelp:
		g.toggleHelp()
	}

	if g.input.Has(core.ActionRestart) && g.game.Phase().Terminal() {
		if !g.fixed {
			g.opts.Runtime.Seed = time.Now().UnixNano()
		}
		g.opts.Logger.Info("restart", "seed", g.opts.Runtime.Seed)
		g.newRound()
		return nil
	}

	if g.game.Running() {
		g.game.Step(g.clock.Delta(g.now()), g.input)
		g.observe()
	}
	return nil
}

// toggleHelp opens or closes the help panel. The panel swallows game keys
// and pauses a running game until it closes.
func (g *Game) toggleHelp() {
	g.showHelp = !g.showHelp
	if g.showHelp {
		clear(g.input.Pressed)
		if g.game.Running() && !g.game.State().Paused {
			g.input.Press(core.ActionPause)
			g.helpPaused = true
		}
		return
	}
	if g.helpPaused {
		g.input.Press(core.ActionPause)
		g.helpPaused = false
	}
}

// receive hands a finished preload to the game without blocking.
func (g *Game) receive() {
	if g.results == nil {
		return
	}
	select {
	case res := <-g.results:
		g.results = nil
		if res.Ready() {
			g.loaded = &res
			g.opts.Logger.Info("assets loaded", "result", res.String())
		} else {
			g.opts.Logger.Error("assets not loaded", "err", res.Err)
		}
		g.game.Preloaded(res)
		g.observe()
	default:
	}
}

// observe logs phase transitions.
func (g *Game) observe() {
	phase := g.game.Phase()
	if phase == g.phase {
		return
	}
	g.opts.Logger.Info("phase", "from", g.phase, "to", phase, "score", g.game.State().Score)
	g.phase = phase
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.game.Render(g.surface)
	if g.showHelp {
		g.surface.DrawPanel("BRICK BREAKER", helpLines(DefaultBindings))
	}
}

// Layout implements ebiten.Game. The field is the logical screen.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Runtime.FieldW, g.opts.Runtime.FieldH
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Runtime.FieldW, opts.Runtime.FieldH)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Runtime.TickRate)

	return ebiten.RunGame(NewGame(opts))
}

// FitField sizes the field for the current monitor.
func FitField(cfg config.Config) (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return cfg.Field.Width, cfg.Field.Height
	}
	w, h := m.Size()
	return core.FitField(cfg.Field.Width, cfg.Field.Height, float64(w), float64(h), m.DeviceScaleFactor())
}
