package core

// Sprite names an image in the asset manifest.
type Sprite string

// Sprites drawn by the game.
const (
	SpriteBackground Sprite = "background"
	SpriteBall       Sprite = "ball"
	SpritePlatform   Sprite = "platform"
	SpriteBlock      Sprite = "block"
)

// Sound names an audio cue in the asset manifest.
type Sound string

// Sound cues played by the game.
const (
	SoundBump    Sound = "bump"
	SoundHit     Sound = "hit"
	SoundFail    Sound = "fail"
	SoundVictory Sound = "victory"
)

// Surface is the 2D drawing target the game renders into.
type Surface interface {
	// ClearRect erases a field rectangle.
	ClearRect(r Rect)
	// DrawImage draws a sprite into dst. A non-nil src selects a region of
	// the sprite sheet, used for the ball animation frames.
	DrawImage(s Sprite, src *Rect, dst Rect)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y float64)
	// DrawBanner draws a message centered on the field, over everything else.
	DrawBanner(title, subtitle string)
}

// Audio plays named sound cues. Playback is fire-and-forget.
type Audio interface {
	Play(s Sound)
}

// Mute is an Audio that plays nothing.
type Mute struct{}

// Play implements Audio.
func (Mute) Play(Sound) {}
