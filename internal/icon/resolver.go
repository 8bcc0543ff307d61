package icon

import (
	"os"
	"path/filepath"
)

// Resolution is the outcome of resolving an identifier against a base
// directory. Path is the absolute path found on disk, or empty when no
// candidate exists. Both extensions are reported separately: the
// orchestrator dispatches the direct-image fast path on the identifier's
// extension but the self-extracting fast path on the resolved path's
// extension, and the choice of cache key family depends on which matched.
type Resolution struct {
	Class         Class
	Path          string
	IdentifierExt string
	ResolvedExt   string
}

// Resolver locates identifiers on disk. It holds no state; it exists as a
// type so the resolution step can be swapped in tests.
type Resolver struct{}

// NewResolver creates a new path resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve classifies identifier and determines which on-disk candidate it
// names, if any. Embedded data identifiers short-circuit: no filesystem
// access is attempted for them.
//
// Candidate order: the identifier itself when it is already absolute and
// exists, then the base-directory join.
func (r *Resolver) Resolve(identifier, baseDir string) Resolution {
	if IsEmbedded(identifier) {
		return Resolution{Class: ClassEmbedded}
	}

	res := Resolution{
		Class:         Classify(identifier),
		IdentifierExt: Ext(identifier),
	}

	joined := JoinPath(baseDir, identifier)
	switch {
	case filepath.IsAbs(identifier) && fileExists(identifier):
		res.Path = filepath.Clean(identifier)
	case fileExists(joined):
		res.Path = joined
	}

	res.ResolvedExt = Ext(res.Path)
	return res
}

// JoinPath joins baseDir and identifier with path-join semantics: an
// identifier that is already absolute is returned as-is (cleaned), never
// concatenated onto the base directory.
func JoinPath(baseDir, identifier string) string {
	if identifier == "" {
		return ""
	}
	if filepath.IsAbs(identifier) {
		return filepath.Clean(identifier)
	}
	return filepath.Join(baseDir, identifier)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
