package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/logging"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

// Options configures a terminal session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Field size, tick rate and seed (0 = time based)
	Loader  preload.Loader
	Audio   core.Audio
	Logger  *log.Logger

	// Initial terminal size in cells. Updated on resize.
	Width  int
	Height int
}

// preloadedMsg carries the outcome of the preload barrier.
type preloadedMsg struct {
	result preload.Result
}

// Model is the Bubble Tea model for the brick breaker.
type Model struct {
	opts     Options
	manifest preload.Manifest
	logger   *log.Logger
	fixed    bool // Seed given by the user; reused on restart

	game    *breakout.Game
	phase   breakout.Phase
	loaded  *preload.Result // Last ready result, reused on restart
	screen  *core.Screen
	surface *Surface

	keys    KeyMap
	mapper  *KeyMapper
	holds   *HoldTracker
	help    help.Model
	spinner spinner.Model
	clock   *core.FrameClock
	input   core.InputFrame
	now     func() time.Time

	showHelp   bool
	helpPaused bool // The help overlay paused the game
	ticking    bool
	quitting   bool
}

// NewModel creates a model for a new session. Assets are loaded by Init.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	fixed := opts.Runtime.Seed != 0
	if !fixed {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(max(opts.Width, 1), max(opts.Height-1, 1))
	game := breakout.New(opts.Config, opts.Runtime, opts.Audio)
	keys := DefaultKeyMap()

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		opts:     opts,
		manifest: preload.NewManifest(opts.Config.Assets),
		logger:   logger,
		fixed:    fixed,
		game:     game,
		phase:    game.Phase(),
		screen:   screen,
		surface:  NewSurface(screen, game.Field()),
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		holds:    NewHoldTracker(opts.Config.Terminal.HoldInitial, opts.Config.Terminal.HoldRelease),
		help:     h,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		clock:    core.NewFrameClock(opts.Runtime.TickRate, opts.Config.Loop.MaxFrameDelta),
		input:    core.NewInputFrame(),
		now:      time.Now,
	}
}

// Init starts the spinner and the preload barrier.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.preloadCmd())
}

// preloadCmd runs the preload barrier off the UI loop.
func (m Model) preloadCmd() tea.Cmd {
	manifest, loader, logger := m.manifest, m.opts.Loader, m.logger
	timeout := m.opts.Config.Assets.LoadTimeout
	logger.Info("loading assets", "count", manifest.Len(), "timeout", timeout)

	return func() tea.Msg {
		res := preload.Preload(context.Background(), manifest, loader, preload.Options{
			Timeout: timeout,
			OnProgress: func(p preload.Progress) {
				logger.Debug("asset loaded", "asset", p.Asset.Path, "loaded", p.Loaded, "total", p.Total)
			},
		})
		return preloadedMsg{result: res}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		if m.game.Phase() != breakout.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case preloadedMsg:
		return m.handlePreloaded(msg.result)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handlePreloaded passes the barrier outcome to the game and starts ticking.
func (m Model) handlePreloaded(res preload.Result) (tea.Model, tea.Cmd) {
	if res.Ready() {
		m.loaded = &res
		m.logger.Info("assets loaded", "result", res.String())
	} else {
		m.logger.Error("assets not loaded", "err", res.Err, "loaded", res.Loaded, "total", res.Total)
	}
	m.game.Preloaded(res)
	m.observe()
	return m, m.startTicks()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.mapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.State().Score)
		return m, tea.Quit
	case core.ActionHelp:
		m.toggleHelp()
		return m, nil
	case core.ActionBack:
		if m.showHelp {
			m.toggleHelp()
		}
		return m, nil
	}

	// The help overlay swallows game keys
	if m.showHelp {
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		if m.game.Phase().Terminal() {
			return m.restart()
		}
	case core.ActionLeft, core.ActionRight:
		// Terminals report no key releases; a new direction ends the old hold.
		other := core.ActionRight
		if action == core.ActionRight {
			other = core.ActionLeft
		}
		if m.holds.Held(other) {
			m.holds.Release(other)
			m.input.Release(other)
		}
		m.holds.Press(action, m.now())
		m.input.Press(action)
	case core.ActionLaunch, core.ActionPause:
		m.input.Press(action)
	}

	return m, nil
}

// toggleHelp opens or closes the help overlay, pausing the game meanwhile.
func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.help.ShowAll = m.showHelp

	// A pause press not yet consumed by a tick toggles the pause state,
	// so it is cancelled rather than doubled.
	pending := m.input.Has(core.ActionPause)
	paused := m.game.State().Paused

	switch {
	case m.showHelp && m.game.Running() && paused && pending:
		delete(m.input.Pressed, core.ActionPause)
		m.helpPaused = true
	case m.showHelp && m.game.Running() && !paused && !pending:
		m.input.Press(core.ActionPause)
		m.helpPaused = true
	case !m.showHelp && m.helpPaused:
		m.helpPaused = false
		if pending {
			delete(m.input.Pressed, core.ActionPause)
			return
		}
		m.input.Press(core.ActionPause)
	}
}

// handleResize processes window resize events. The field keeps its size
// and is rescaled to the new cell grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	for _, a := range m.holds.Expire(now) {
		m.input.Release(a)
	}

	dt := m.clock.Delta(now)
	m.game.Step(dt, m.input)
	m.input.Clear()
	m.observe()

	if !m.game.Running() {
		m.ticking = false
		m.holds.Reset()
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// startTicks starts the tick loop if the game needs it.
func (m *Model) startTicks() tea.Cmd {
	if m.ticking || !m.game.Running() {
		return nil
	}
	m.ticking = true
	m.clock.Reset()
	return tickCmd(m.opts.Runtime.TickInterval())
}

// observe logs phase transitions.
func (m *Model) observe() {
	phase := m.game.Phase()
	if phase == m.phase {
		return
	}
	st := m.game.State()
	m.logger.Info("phase", "from", m.phase, "to", phase, "score", st.Score, "total", st.Total)
	if err := m.game.Err(); err != nil && phase == breakout.PhaseLoadFailed {
		m.logger.Error("load failed", "err", err)
	}
	m.phase = phase
}

// restart builds a fresh game. Assets are loaded once; a failed load is
// retried.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.fixed {
		m.opts.Runtime.Seed = time.Now().UnixNano()
	}
	m.game = breakout.New(m.opts.Config, m.opts.Runtime, m.opts.Audio)
	m.surface = NewSurface(m.screen, m.game.Field())
	m.input.Clear()
	m.holds.Reset()
	m.ticking = false
	m.logger.Info("restart", "seed", m.opts.Runtime.Seed)

	if m.loaded == nil {
		m.observe()
		return m, tea.Batch(m.spinner.Tick, m.preloadCmd())
	}
	m.game.Preloaded(*m.loaded)
	m.observe()
	return m, m.startTicks()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()
	var body string
	switch {
	case m.game.Phase() == breakout.PhaseLoading:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading assets...")
	case m.showHelp:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.helpView())
	default:
		m.game.Render(m.surface)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + m.statusLine()
}

func (m Model) helpView() string {
	content := titleStyle.Render("BRICK BREAKER") + "\n\n" +
		m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		hintStyle.Render("Press H or Esc to continue")
	return helpBoxStyle.Render(content)
}

func (m Model) statusLine() string {
	if err := m.game.Err(); err != nil {
		return errorStyle.Render(fmt.Sprintf("load failed: %v  (r retry, q quit)", err))
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
