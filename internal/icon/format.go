// Package icon resolves launcher icon identifiers (data URIs, absolute
// paths, plugin-relative paths, executables and shortcuts) into decoded
// in-memory bitmaps, caching results for the life of the process.
package icon

import (
	"path/filepath"
	"sort"
	"strings"
)

// Class describes the format family of an identifier or resolved path.
type Class int

const (
	// ClassOther covers unknown extensions and unresolvable identifiers.
	ClassOther Class = iota
	// ClassEmbedded marks self-contained data-URI identifiers.
	ClassEmbedded
	// ClassDirectImage marks directly decodable image containers.
	ClassDirectImage
	// ClassSelfExtracting marks file types whose icon must be extracted
	// from the file itself or its shell association. Each instance may
	// carry a distinct icon, so these are never cache-shared by extension.
	ClassSelfExtracting
)

// directImageExts are containers the decoder can load without shell help.
var directImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".ico":  true,
}

// selfExtractingExts are per-instance icon carriers.
var selfExtractingExts = map[string]bool{
	".exe":       true,
	".lnk":       true,
	".ani":       true,
	".cur":       true,
	".sln":       true,
	".appref-ms": true,
}

// Ext returns the lower-cased filename extension of name, including the
// leading dot. Empty input yields an empty extension.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsDirectImage reports whether ext (lower-cased, with dot) is a directly
// decodable image container.
func IsDirectImage(ext string) bool {
	return directImageExts[ext]
}

// IsSelfExtracting reports whether ext (lower-cased, with dot) is a
// per-instance icon carrier.
func IsSelfExtracting(ext string) bool {
	return selfExtractingExts[ext]
}

// DirectImageExts returns the direct-image extension set, sorted.
func DirectImageExts() []string {
	return sortedKeys(directImageExts)
}

// SelfExtractingExts returns the self-extracting extension set, sorted.
func SelfExtractingExts() []string {
	return sortedKeys(selfExtractingExts)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Classify determines the format family of an identifier.
func Classify(identifier string) Class {
	if IsEmbedded(identifier) {
		return ClassEmbedded
	}
	ext := Ext(identifier)
	switch {
	case IsSelfExtracting(ext):
		return ClassSelfExtracting
	case IsDirectImage(ext):
		return ClassDirectImage
	default:
		return ClassOther
	}
}

// String returns a short name for the class, for logging.
func (c Class) String() string {
	switch c {
	case ClassEmbedded:
		return "embedded"
	case ClassDirectImage:
		return "direct-image"
	case ClassSelfExtracting:
		return "self-extracting"
	default:
		return "other"
	}
}
