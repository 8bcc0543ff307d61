package icon

import (
	"context"
	"image"

	"golang.org/x/sync/singleflight"

	"github.com/brynd/iconres/internal/logging"
)

// Service is the resolution orchestrator. It combines the path resolver,
// the image cache and the shell extractor into the end-to-end conversion
// from identifier to decoded bitmap.
type Service struct {
	cache     *Cache
	resolver  *Resolver
	extractor Extractor

	// flight collapses concurrent misses for the same path so a burst of
	// identical lookups triggers at most one extraction.
	flight singleflight.Group
}

// NewService creates a resolution service around an injected cache and a
// platform extractor. A nil extractor disables shell extraction; direct
// images and embedded data still resolve.
func NewService(cache *Cache, extractor Extractor) *Service {
	return &Service{
		cache:     cache,
		resolver:  NewResolver(),
		extractor: extractor,
	}
}

// Convert turns identifier into a decoded bitmap, resolving relative
// identifiers against baseDir. A nil result means no image is available.
// Convert never fails hard: malformed identifiers, missing files, decode
// and extraction errors all degrade to nil.
//
// Results are cached for the life of the process. Per-instance formats
// (executables, shortcuts) cache under the full path; extension-generic
// fallbacks cache under the bare extension. Embedded data identifiers are
// decoded on every call and never touch the cache. Failures are never
// cached, so a key that failed once is retried on the next call.
func (s *Service) Convert(ctx context.Context, identifier, baseDir string) image.Image {
	if identifier == "" {
		return nil
	}

	if IsEmbedded(identifier) {
		img, err := DecodeEmbedded(identifier)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("embedded image decode failed")
			return nil
		}
		return img
	}

	fullPath := JoinPath(baseDir, identifier)
	identExt := Ext(identifier)

	if img, ok := s.cache.Get(fullPath); ok {
		return img
	}
	// Extension-level entries are only consulted for formats that may
	// share an icon across files; per-instance formats never do.
	if !IsSelfExtracting(identExt) {
		if img, ok := s.cache.Get(identExt); ok {
			return img
		}
	}

	v, _, _ := s.flight.Do(fullPath, func() (interface{}, error) {
		return s.resolveAndLoad(ctx, identifier, baseDir, fullPath, identExt), nil
	})
	img, _ := v.(image.Image)
	return img
}

// resolveAndLoad runs path resolution, dispatches on the format family and
// stores any produced image under the key family the format dictates.
func (s *Service) resolveAndLoad(ctx context.Context, identifier, baseDir, fullPath, identExt string) image.Image {
	log := logging.FromContext(ctx)
	res := s.resolver.Resolve(identifier, baseDir)

	var img image.Image
	var key string

	switch {
	case IsSelfExtracting(res.ResolvedExt):
		// The file carries its own icon; the result is unique to this
		// instance and keyed by full path.
		img = s.extract(ctx, res.Path)
		key = fullPath

	case res.Path != "" && IsDirectImage(identExt):
		decoded, err := DecodeFile(res.Path)
		if err != nil {
			log.Debug().Err(err).Str("path", res.Path).Msg("direct image decode failed")
		}
		img = decoded
		key = fullPath

	default:
		// Unknown format or resolution failed. The shell answers with the
		// association icon for the extension (or nothing), so the result
		// is extension-generic unless the identifier itself names a
		// per-instance format.
		img = s.extract(ctx, res.Path)
		key = identExt
		if IsSelfExtracting(identExt) {
			key = fullPath
		}
	}

	if img == nil {
		return nil
	}
	// First insert wins; a racing call for the same key settles on the
	// value that landed first.
	return s.cache.Put(key, img)
}

// extract asks the shell extractor for an icon, degrading failures to nil.
// The path may be empty; extractors answer (nil, nil) for it.
func (s *Service) extract(ctx context.Context, path string) image.Image {
	if s.extractor == nil {
		return nil
	}
	img, err := s.extractor.Extract(ctx, path)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("shell icon extraction failed")
		return nil
	}
	return img
}
