// Package assets embeds the default sprites and sound cues.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed img/*.png sounds/*.wav
var embedded embed.FS

// FS returns the asset file system: dir on disk when set, the embedded
// assets otherwise. Paths are relative, e.g. "img/ball.png".
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}
