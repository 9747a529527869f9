package preload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"img/ball.png":    {Data: pngBytes(t)},
		"img/broken.png":  {Data: []byte("not a png")},
		"sounds/hit.wav":  {Data: []byte("RIFF....WAVE")},
		"sounds/mute.wav": {Data: nil},
	}

	tests := []struct {
		name    string
		asset   Asset
		wantErr error
		ok      bool
	}{
		{"sprite", Asset{KindSprite, "ball", "img/ball.png"}, nil, true},
		{"sound", Asset{KindSound, "hit", "sounds/hit.wav"}, nil, true},
		{"missing", Asset{KindSprite, "block", "img/block.png"}, ErrMissing, false},
		{"corrupt sprite", Asset{KindSprite, "broken", "img/broken.png"}, nil, false},
		{"empty sound", Asset{KindSound, "mute", "sounds/mute.wav"}, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []byte
			l := NewFSLoader(fsys, func(a Asset, data []byte) error {
				got = data
				return nil
			})
			err := l.Load(context.Background(), tc.asset)
			if tc.ok {
				if err != nil {
					t.Fatalf("Load() error: %v", err)
				}
				if len(got) == 0 {
					t.Error("sink should receive the asset bytes")
				}
				return
			}
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Load() error = %v, expected %v", err, tc.wantErr)
			}
			if got != nil {
				t.Error("sink should not be called for a failed asset")
			}
		})
	}
}

func TestFSLoaderSinkError(t *testing.T) {
	fsys := fstest.MapFS{"img/ball.png": {Data: pngBytes(t)}}
	errDecode := errors.New("unsupported")

	l := NewFSLoader(fsys, func(Asset, []byte) error { return errDecode })
	err := l.Load(context.Background(), Asset{KindSprite, "ball", "img/ball.png"})
	if !errors.Is(err, errDecode) {
		t.Errorf("Load() error = %v, expected sink error", err)
	}
}

func TestFSLoaderMissingFailsBarrier(t *testing.T) {
	m := Manifest{Assets: []Asset{
		{KindSprite, "ball", "img/ball.png"},
		{KindSprite, "block", "img/block.png"},
	}}
	fsys := fstest.MapFS{"img/ball.png": {Data: pngBytes(t)}}

	res := Preload(context.Background(), m, NewFSLoader(fsys, nil), Options{})
	if res.Ready() || !errors.Is(res.Err, ErrMissing) {
		t.Errorf("Preload() = %v, expected ErrMissing", res)
	}
}
