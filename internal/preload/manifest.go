// Package preload loads the game's sprites and sounds before the first frame.
// Every asset is fetched concurrently and the game starts only when all of
// them are available, the load fails, or the deadline passes.
package preload

import (
	"path"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// Kind distinguishes images from audio cues.
type Kind int

const (
	KindSprite Kind = iota
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Asset is one entry of a manifest.
type Asset struct {
	Kind Kind
	Name string // e.g. "ball"
	Path string // slash-separated, e.g. "img/ball.png"
}

// Manifest lists every asset the game needs.
type Manifest struct {
	Assets []Asset
}

// NewManifest builds the manifest from the asset configuration:
// sprites at <image_dir>/<name><image_ext>, sounds at <sound_dir>/<name><sound_ext>.
func NewManifest(cfg config.AssetsConfig) Manifest {
	m := Manifest{Assets: make([]Asset, 0, len(cfg.Sprites)+len(cfg.Sounds))}
	for _, name := range cfg.Sprites {
		m.Assets = append(m.Assets, Asset{
			Kind: KindSprite,
			Name: name,
			Path: path.Join(cfg.ImageDir, name+cfg.ImageExt),
		})
	}
	for _, name := range cfg.Sounds {
		m.Assets = append(m.Assets, Asset{
			Kind: KindSound,
			Name: name,
			Path: path.Join(cfg.SoundDir, name+cfg.SoundExt),
		})
	}
	return m
}

// Len returns the number of assets.
func (m Manifest) Len() int {
	return len(m.Assets)
}

// Of returns the assets of one kind, in manifest order.
func (m Manifest) Of(k Kind) []Asset {
	var out []Asset
	for _, a := range m.Assets {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}
