package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// KeyMap holds the key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Help    key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "launch ball"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Help, k.Back},
		{k.Restart, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Launch):
		return core.ActionLaunch
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker turns the press and auto-repeat events of a terminal into
// held directions. A direction is released when no repeat arrives within
// the window: initial after the first press, which spans the terminal's
// repeat delay, and repeat after that.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Action]hold
}

type hold struct {
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with the given windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]hold),
	}
}

// Press records a key event and reports whether it starts a new hold.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	_, ok := h.held[a]
	h.held[a] = hold{last: now, repeated: ok}
	return !ok
}

// Release forgets a held action.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.held, a)
}

// Held reports whether the action is held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Expire releases and returns the held actions whose window has passed.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var expired []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		st, ok := h.held[a]
		if !ok {
			continue
		}
		window := h.initial
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.last) >= window {
			delete(h.held, a)
			expired = append(expired, a)
		}
	}
	return expired
}

// Reset releases everything without reporting.
func (h *HoldTracker) Reset() {
	clear(h.held)
}
