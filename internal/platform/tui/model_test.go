package tui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

var errBroken = errors.New("broken asset")

// newTestModel returns a model on a 1280x720 field with a loader that
// succeeds unless fail is set.
func newTestModel(t *testing.T, fail *atomic.Bool) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	loader := preload.LoaderFunc(func(ctx context.Context, a preload.Asset) error {
		if fail != nil && fail.Load() {
			return errBroken
		}
		return nil
	})
	return NewModel(Options{
		Config:  cfg,
		Runtime: cfg.Runtime(1280, 720, 42),
		Loader:  loader,
		Width:   128,
		Height:  37,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// loaded runs the preload barrier synchronously and delivers its result.
func loaded(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	msg := m.preloadCmd()()
	if _, ok := msg.(preloadedMsg); !ok {
		t.Fatalf("preload command returned %T, want preloadedMsg", msg)
	}
	return update(t, m, msg)
}

func TestModelLoadsAssets(t *testing.T) {
	m := newTestModel(t, nil)
	if got := m.game.Phase(); got != breakout.PhaseLoading {
		t.Fatalf("initial phase = %v, want loading", got)
	}
	if !strings.Contains(m.View(), "Loading assets") {
		t.Error("loading view should show the spinner message")
	}

	m, cmd := loaded(t, m)
	if got := m.game.Phase(); got != breakout.PhaseReady {
		t.Errorf("phase after preload = %v, want ready", got)
	}
	if cmd == nil || !m.ticking {
		t.Error("a ready game should start ticking")
	}

	view := m.View()
	for _, want := range []string{"Score: 0", "Press SPACE to launch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelLoadFailureAndRetry(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	m := newTestModel(t, &fail)

	m, cmd := loaded(t, m)
	if got := m.game.Phase(); got != breakout.PhaseLoadFailed {
		t.Fatalf("phase = %v, want load-failed", got)
	}
	if cmd != nil || m.ticking {
		t.Error("a failed load should not tick")
	}
	if !strings.Contains(m.View(), "load failed") {
		t.Error("status line should report the failure")
	}

	// Ticks are ignored once stopped.
	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick after failure should not reschedule")
	}

	fail.Store(false)
	m, cmd = update(t, m, runeKey('r'))
	if got := m.game.Phase(); got != breakout.PhaseLoading {
		t.Fatalf("phase after retry = %v, want loading", got)
	}
	if cmd == nil {
		t.Fatal("retry should run the preload again")
	}

	m, _ = loaded(t, m)
	if got := m.game.Phase(); got != breakout.PhaseReady {
		t.Errorf("phase after second preload = %v, want ready", got)
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	game := m.game

	m, _ = update(t, m, runeKey('r'))
	if m.game != game {
		t.Error("restart should only apply to a finished game")
	}
}

func TestModelHeldDirectionExpires(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)

	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	start := m.game.Snapshot().PlatformX

	m, cmd := update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if cmd == nil {
		t.Fatal("running game should keep ticking")
	}
	snap := m.game.Snapshot()
	if !snap.PlatformMoving || snap.PlatformX >= start {
		t.Fatalf("platform should move left: moving=%v x=%v start=%v", snap.PlatformMoving, snap.PlatformX, start)
	}

	// No repeat arrives, so the hold expires after the initial window.
	late := t0.Add(m.opts.Config.Terminal.HoldInitial + time.Millisecond)
	m, _ = update(t, m, TickMsg(late))
	if m.game.Snapshot().PlatformMoving {
		t.Error("platform should stop once the hold expires")
	}
}

func TestModelOppositeDirectionReplacesHold(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.holds.Held(core.ActionLeft) {
		t.Error("pressing right should end the left hold")
	}
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if snap := m.game.Snapshot(); !snap.PlatformMoving || snap.PlatformVX <= 0 {
		t.Errorf("platform should move right, vx = %v", snap.PlatformVX)
	}
}

func TestModelHelpPausesGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey('h'))
	if !m.showHelp {
		t.Fatal("h should open the help")
	}
	if !strings.Contains(m.View(), "BRICK BREAKER") {
		t.Error("help view should show the title")
	}

	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if !m.game.State().Paused {
		t.Error("help should pause the game")
	}

	// Game keys are swallowed by the overlay.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.input.Empty() {
		t.Error("help should ignore game keys")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.showHelp {
		t.Fatal("esc should close the help")
	}
	m, _ = update(t, m, TickMsg(t0.Add(32*time.Millisecond)))
	if m.game.State().Paused {
		t.Error("closing the help should resume the game")
	}
}

func TestModelHelpOpenedAndClosedWithinTick(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.showHelp {
		t.Fatal("esc should close the help")
	}
	if m.input.Has(core.ActionPause) {
		t.Error("no pause should be pending after the overlay closed")
	}

	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if m.game.State().Paused {
		t.Error("game should not stay paused once the help is gone")
	}
}

func TestModelHelpReopenedWithinTick(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	// Close and reopen before the resume reaches the game.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, TickMsg(t0.Add(32*time.Millisecond)))
	if !m.showHelp || !m.game.State().Paused {
		t.Fatalf("help=%v paused=%v, expected the help open over a paused game", m.showHelp, m.game.State().Paused)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m, _ = update(t, m, TickMsg(t0.Add(48*time.Millisecond)))
	if m.game.State().Paused {
		t.Error("closing the help should resume the game")
	}
}

func TestModelHelpKeepsUserPause(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = loaded(t, m)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(t0))
	if !m.game.State().Paused {
		t.Fatal("p should pause")
	}

	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if !m.game.State().Paused {
		t.Error("help should not resume a game the player paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 80x24", m.screen.Width(), m.screen.Height())
	}
}
