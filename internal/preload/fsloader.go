package preload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
)

// Sink receives the raw bytes of a verified asset, typically to decode it
// into a frontend-specific image or sound buffer.
type Sink func(a Asset, data []byte) error

// FSLoader reads assets from a file system.
type FSLoader struct {
	FS   fs.FS
	Sink Sink // Optional
}

// NewFSLoader creates a loader for fsys.
func NewFSLoader(fsys fs.FS, sink Sink) *FSLoader {
	return &FSLoader{FS: fsys, Sink: sink}
}

// Load reads and verifies one asset. Sprites must decode as images and
// sounds must not be empty.
func (l *FSLoader) Load(ctx context.Context, a Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := fs.ReadFile(l.FS, a.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissing, a.Path)
		}
		return fmt.Errorf("read %s: %w", a.Path, err)
	}

	switch a.Kind {
	case KindSprite:
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("decode %s: %w", a.Path, err)
		}
	case KindSound:
		if len(data) == 0 {
			return fmt.Errorf("decode %s: empty file", a.Path)
		}
	}

	if l.Sink != nil {
		if err := l.Sink(a, data); err != nil {
			return fmt.Errorf("decode %s: %w", a.Path, err)
		}
	}
	return nil
}
