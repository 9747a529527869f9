package web

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// binding ties keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	label  string // Key names shown in the help
	desc   string
}

// DefaultBindings are the window key bindings.
var DefaultBindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, "Left/A", "move left"},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, "Right/D", "move right"},
	{core.ActionLaunch, []ebiten.Key{ebiten.KeySpace}, "Space", "launch ball"},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}, "P", "pause"},
	{core.ActionHelp, []ebiten.Key{ebiten.KeyH}, "H", "help"},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}, "Esc", "close help"},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}, "R/Enter", "play again"},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, "Q", "quit"},
}

// KeyState reports edge events for a key.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// Poll records this frame's key edges into in. Only movement actions
// produce releases.
func Poll(ks KeyState, bindings []binding, in *core.InputFrame) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if ks.JustPressed(k) {
				in.Press(b.action)
			}
			if b.action.Direction() != 0 && ks.JustReleased(k) {
				in.Release(b.action)
			}
		}
	}
}

// helpLines lists the bindings for the help panel.
func helpLines(bindings []binding) []string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-8s %s", b.label, b.desc))
	}
	return lines
}
