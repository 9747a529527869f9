package web

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// fakeKeys reports fixed key edges.
type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (f fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }

func TestPoll(t *testing.T) {
	tests := []struct {
		name         string
		pressed      []ebiten.Key
		released     []ebiten.Key
		wantPressed  []core.Action
		wantReleased []core.Action
	}{
		{
			name:        "arrow left",
			pressed:     []ebiten.Key{ebiten.KeyArrowLeft},
			wantPressed: []core.Action{core.ActionLeft},
		},
		{
			name:        "d moves right",
			pressed:     []ebiten.Key{ebiten.KeyD},
			wantPressed: []core.Action{core.ActionRight},
		},
		{
			name:        "space launches",
			pressed:     []ebiten.Key{ebiten.KeySpace},
			wantPressed: []core.Action{core.ActionLaunch},
		},
		{
			name:         "release right",
			released:     []ebiten.Key{ebiten.KeyArrowRight},
			wantReleased: []core.Action{core.ActionRight},
		},
		{
			name:     "release of a non-movement key is ignored",
			released: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
		},
		{
			name:        "several keys",
			pressed:     []ebiten.Key{ebiten.KeyP, ebiten.KeyEnter, ebiten.KeyQ},
			wantPressed: []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := fakeKeys{pressed: map[ebiten.Key]bool{}, released: map[ebiten.Key]bool{}}
			for _, k := range tt.pressed {
				ks.pressed[k] = true
			}
			for _, k := range tt.released {
				ks.released[k] = true
			}

			in := core.NewInputFrame()
			Poll(ks, DefaultBindings, &in)

			if len(in.Pressed) != len(tt.wantPressed) {
				t.Errorf("pressed = %v, want %v", in.Pressed, tt.wantPressed)
			}
			for _, a := range tt.wantPressed {
				if !in.Has(a) {
					t.Errorf("%v should be pressed", a)
				}
			}
			if len(in.Released) != len(tt.wantReleased) {
				t.Errorf("released = %v, want %v", in.Released, tt.wantReleased)
			}
			for _, a := range tt.wantReleased {
				if !in.HasReleased(a) {
					t.Errorf("%v should be released", a)
				}
			}
		})
	}
}
