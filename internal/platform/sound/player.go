// Package sound plays the game's audio cues in the terminal frontend.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

const sampleRate = beep.SampleRate(44100)

// Player decodes cues into memory during preload and plays them
// fire-and-forget through the speaker. It implements core.Audio.
type Player struct {
	mu          sync.Mutex
	buffers     map[core.Sound]*beep.Buffer
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

// New creates a player. Nothing is played until Init succeeds.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		buffers: make(map[core.Sound]*beep.Buffer),
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Init opens the audio device. Without a device the player stays silent
// and the game runs on.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		p.logger.Warn("audio unavailable, playing silently", "error", err)
		p.enabled = false
		return
	}
	speaker.Play(p.mixer)
	p.initialized = true
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Sink is a preload.Sink that decodes sound assets. Other assets pass
// through untouched.
func (p *Player) Sink(a preload.Asset, data []byte) error {
	if a.Kind != preload.KindSound {
		return nil
	}
	return p.Decode(core.Sound(a.Name), path.Ext(a.Path), bytes.NewReader(data))
}

// Decode reads a WAV or MP3 cue into memory at the speaker's sample rate.
func (p *Player) Decode(name core.Sound, ext string, r io.Reader) error {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(r)
	case ".mp3":
		streamer, format, err = mp3.Decode(io.NopCloser(r))
	default:
		return fmt.Errorf("sound: unsupported format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("sound: decode %s: %w", name, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("sound: decode %s: %w", name, err)
	}

	p.mu.Lock()
	p.buffers[name] = buf
	p.mu.Unlock()
	return nil
}

// Loaded reports whether a cue is decoded.
func (p *Player) Loaded(name core.Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.buffers[name]
	return ok
}

// Duration returns the length of a decoded cue.
func (p *Player) Duration(name core.Sound) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf, ok := p.buffers[name]
	if !ok {
		return 0
	}
	return sampleRate.D(buf.Len())
}

// Play starts a cue. Overlapping cues are mixed.
func (p *Player) Play(name core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.buffers[name]
	if !ok {
		p.logger.Debug("sound not loaded", "sound", name)
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), p.volume))
	speaker.Unlock()
}

// withVolume scales a streamer by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
