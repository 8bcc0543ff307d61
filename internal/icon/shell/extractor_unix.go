//go:build !windows

package shell

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/brynd/iconres/internal/icon"
)

// Icon theme directories searched under each data root, largest first.
var themeSizeDirs = []string{"48x48", "64x64", "32x32", "128x128", "scalable"}

// Theme contexts that may hold file-type icons.
var themeContexts = []string{"mimetypes", "apps", "places"}

// Extractor looks up file-type icons in freedesktop icon themes. The
// primary strategy maps the file's extension to a type-specific icon
// name; the secondary strategy falls back to generic file icons.
type Extractor struct {
	dataDirs []string
}

// New creates an extractor searching the given data roots. With no roots,
// the XDG data directories are used.
func New(dataDirs ...string) *Extractor {
	if len(dataDirs) == 0 {
		dataDirs = defaultDataDirs()
	}
	return &Extractor{dataDirs: dataDirs}
}

// Extract returns the theme icon associated with path's file type, or
// (nil, nil) when the path is empty or no themed icon exists.
func (e *Extractor) Extract(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, name := range iconNames(path) {
		iconPath := e.lookup(name)
		if iconPath == "" {
			continue
		}
		img, err := icon.DecodeFile(iconPath)
		if err != nil {
			// A corrupt theme file is not fatal; try the next candidate.
			continue
		}
		return img, nil
	}
	return nil, nil
}

// lookup searches the data roots for a themed PNG with the given name.
func (e *Extractor) lookup(name string) string {
	for _, root := range e.dataDirs {
		for _, theme := range []string{"hicolor", "Adwaita", "breeze"} {
			for _, size := range themeSizeDirs {
				for _, ctx := range themeContexts {
					p := filepath.Join(root, "icons", theme, size, ctx, name+".png")
					if fileExists(p) {
						return p
					}
				}
			}
		}
		// Legacy pixmaps location.
		p := filepath.Join(root, "pixmaps", name+".png")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// iconNames returns icon name candidates for path, most specific first.
func iconNames(path string) []string {
	var names []string
	switch icon.Ext(path) {
	case ".exe", ".appref-ms":
		names = append(names, "application-x-executable")
	case ".lnk", ".desktop":
		names = append(names, "application-x-desktop")
	case ".sln":
		names = append(names, "text-x-generic-template")
	case ".txt", ".md", ".log":
		names = append(names, "text-x-generic")
	case ".pdf":
		names = append(names, "application-pdf")
	case ".zip", ".gz", ".tar", ".xz", ".7z":
		names = append(names, "package-x-generic")
	case ".mp3", ".flac", ".ogg", ".wav":
		names = append(names, "audio-x-generic")
	case ".mp4", ".mkv", ".webm", ".avi":
		names = append(names, "video-x-generic")
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".ico", ".svg":
		names = append(names, "image-x-generic")
	}
	return append(names, "text-x-generic", "unknown")
}

func defaultDataDirs() []string {
	var dirs []string
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share"))
	}
	if v := os.Getenv("XDG_DATA_DIRS"); v != "" {
		for _, d := range strings.Split(v, ":") {
			if d != "" {
				dirs = append(dirs, d)
			}
		}
	} else {
		dirs = append(dirs, "/usr/local/share", "/usr/share")
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
