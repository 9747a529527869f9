// Package web runs the brick breaker in a window or browser tab with
// Ebitengine. Built for js/wasm it is the browser frontend.
package web

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"path"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

// SampleRate is the audio context rate. Sounds are resampled to it on load.
const SampleRate = 44100

// Store holds decoded sprites and sounds. Sink fills it from the preload
// barrier's goroutines; the game loop reads it.
type Store struct {
	mu     sync.RWMutex
	images map[core.Sprite]*ebiten.Image
	sounds map[core.Sound][]byte // Decoded PCM

	audio   *audio.Context
	volume  float64
	enabled bool
	logger  *log.Logger
}

// NewStore creates an empty store. ctx may be nil to keep the game silent.
func NewStore(ctx *audio.Context, cfg config.AudioConfig, logger *log.Logger) *Store {
	return &Store{
		images:  make(map[core.Sprite]*ebiten.Image),
		sounds:  make(map[core.Sound][]byte),
		audio:   ctx,
		volume:  cfg.Volume,
		enabled: cfg.Enabled && ctx != nil,
		logger:  logger,
	}
}

// Sink decodes a loaded asset into the store. It is a preload.Sink.
func (s *Store) Sink(a preload.Asset, data []byte) error {
	switch a.Kind {
	case preload.KindSprite:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode image %s: %w", a.Path, err)
		}
		eimg := ebiten.NewImageFromImage(img)

		s.mu.Lock()
		s.images[core.Sprite(a.Name)] = eimg
		s.mu.Unlock()
	case preload.KindSound:
		if !s.enabled {
			return nil
		}
		pcm, err := decodeSound(path.Ext(a.Path), bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode audio %s: %w", a.Path, err)
		}

		s.mu.Lock()
		s.sounds[core.Sound(a.Name)] = pcm
		s.mu.Unlock()
	}
	return nil
}

// decodeSound decodes a wav or mp3 file to PCM at SampleRate.
func decodeSound(ext string, r io.Reader) ([]byte, error) {
	var stream io.Reader
	switch strings.ToLower(ext) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, err
		}
		stream = s
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, err
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	return io.ReadAll(stream)
}

// Image returns a loaded sprite, or nil.
func (s *Store) Image(sp core.Sprite) *ebiten.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images[sp]
}

// Play implements core.Audio. Every call gets its own player so cues can
// overlap.
func (s *Store) Play(name core.Sound) {
	if !s.enabled {
		return
	}
	s.mu.RLock()
	pcm, ok := s.sounds[name]
	s.mu.RUnlock()
	if !ok {
		s.logger.Debug("sound not loaded", "sound", name)
		return
	}

	p := s.audio.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
}
