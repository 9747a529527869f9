package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info level", false, false},
		{"debug level", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, "breakout", tc.debug)
			logger.Debug("tick", "dt", "16ms")
			logger.Info("ready")

			out := buf.String()
			if got := strings.Contains(out, "tick"); got != tc.wantDebug {
				t.Errorf("debug line present = %v, expected %v:\n%s", got, tc.wantDebug, out)
			}
			if !strings.Contains(out, "ready") || !strings.Contains(out, "breakout") {
				t.Errorf("info line missing prefix or message:\n%s", out)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "breakout.log")

	logger, closer, err := OpenFile(path, "breakout", false)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger.Info("assets loaded", "count", 8)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "assets loaded") {
		t.Errorf("log file missing entry:\n%s", data)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}
