// Package config provides YAML-based configuration loading for the brick
// breaker: field and grid layout, entity sizes and speeds, asset manifest,
// loop timing and audio.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Config contains all configuration for the game.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Grid     GridConfig     `yaml:"grid"`
	Ball     BallConfig     `yaml:"ball"`
	Platform PlatformConfig `yaml:"platform"`
	HUD      HUDConfig      `yaml:"hud"`
	Assets   AssetsConfig   `yaml:"assets"`
	Loop     LoopConfig     `yaml:"loop"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// FieldConfig is the maximum field size in pixels. Frontends may shrink the
// height to fit the display, see core.FitField.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the block layout.
type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	BlockWidth  float64 `yaml:"block_width"`
	BlockHeight float64 `yaml:"block_height"`
	PitchX      float64 `yaml:"pitch_x"` // Horizontal distance between block origins
	PitchY      float64 `yaml:"pitch_y"` // Vertical distance between block origins
}

// BallConfig defines the ball.
type BallConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // Pixels per second
	Frames      int     `yaml:"frames"`       // Animation frames in the sprite sheet
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance from the field bottom to the ball top
	Steering    bool    `yaml:"steering"`     // Paddle hit position sets the horizontal speed
}

// PlatformConfig defines the paddle.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per second
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the platform top
}

// HUDConfig positions the score text.
type HUDConfig struct {
	ScoreX float64 `yaml:"score_x"`
	ScoreY float64 `yaml:"score_y"`
}

// AssetsConfig describes where sprites and sounds live.
type AssetsConfig struct {
	Dir         string        `yaml:"dir"` // Empty means the embedded assets
	ImageDir    string        `yaml:"image_dir"`
	ImageExt    string        `yaml:"image_ext"`
	SoundDir    string        `yaml:"sound_dir"`
	SoundExt    string        `yaml:"sound_ext"`
	Sprites     []string      `yaml:"sprites"`
	Sounds      []string      `yaml:"sounds"`
	LoadTimeout time.Duration `yaml:"load_timeout"`
}

// LoopConfig defines simulation timing.
type LoopConfig struct {
	TickRate      int           `yaml:"tick_rate"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// TerminalConfig holds terminal frontend settings.
// Terminals report key presses and auto-repeats but no releases, so a
// direction counts as released once its repeats stop.
type TerminalConfig struct {
	// HoldInitial covers the delay before the terminal starts repeating.
	HoldInitial time.Duration `yaml:"hold_initial"`
	// HoldRelease is the silence after a repeat that ends the hold.
	HoldRelease time.Duration `yaml:"hold_release"`
}

// MinFieldHeight is the shortest field that keeps the resting ball clear of
// the centered grid.
func (c Config) MinFieldHeight() int {
	return int(math.Ceil(c.Grid.PitchY*float64(c.Grid.Rows) + 2*c.Ball.SpawnOffset))
}

// Runtime builds the core runtime config for a field size and seed. The
// height is raised to MinFieldHeight when the display is too short.
func (c Config) Runtime(fieldW, fieldH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		FieldW:   fieldW,
		FieldH:   max(fieldH, c.MinFieldHeight()),
		TickRate: c.Loop.TickRate,
		Seed:     seed,
	}
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size %dx%d must be positive", c.Field.Width, c.Field.Height)
	check(c.Grid.Rows > 0 && c.Grid.Columns > 0, "grid %dx%d must be positive", c.Grid.Columns, c.Grid.Rows)
	check(c.Grid.BlockWidth > 0 && c.Grid.BlockHeight > 0, "block size must be positive")
	check(c.Grid.PitchX >= c.Grid.BlockWidth && c.Grid.PitchY >= c.Grid.BlockHeight, "block pitch smaller than block size")
	check(c.Grid.PitchX*float64(c.Grid.Columns) <= float64(c.Field.Width), "grid is wider than the field")
	check(c.Grid.PitchY*float64(c.Grid.Rows) <= float64(c.Field.Height), "grid is taller than the field")
	check(c.MinFieldHeight() <= c.Field.Height, "field height %d leaves no room below the grid, need %d", c.Field.Height, c.MinFieldHeight())
	check(c.Ball.Width > 0 && c.Ball.Height > 0, "ball size must be positive")
	check(c.Ball.Speed > 0, "ball speed %v must be positive", c.Ball.Speed)
	check(c.Ball.Frames > 0, "ball frames %d must be positive", c.Ball.Frames)
	check(c.Platform.Width > 0 && c.Platform.Height > 0, "platform size must be positive")
	check(c.Platform.Width <= float64(c.Field.Width), "platform is wider than the field")
	check(c.Platform.Speed > 0, "platform speed %v must be positive", c.Platform.Speed)
	check(len(c.Assets.Sprites) > 0, "no sprites listed")
	check(len(c.Assets.Sounds) > 0, "no sounds listed")
	check(c.Assets.LoadTimeout > 0, "load timeout %v must be positive", c.Assets.LoadTimeout)
	check(c.Loop.TickRate > 0, "tick rate %d must be positive", c.Loop.TickRate)
	check(c.Loop.MaxFrameDelta > 0, "max frame delta %v must be positive", c.Loop.MaxFrameDelta)
	check(c.Terminal.HoldInitial > 0 && c.Terminal.HoldRelease > 0, "key hold windows must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "volume %v outside [0, 1]", c.Audio.Volume)

	return errors.Join(errs...)
}
