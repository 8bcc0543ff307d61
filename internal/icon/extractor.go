package icon

import (
	"context"
	"image"
)

// Extractor obtains an icon for a file from the operating system shell.
// It is the only platform-specific boundary of the resolution pipeline;
// one implementation exists per target platform, and tests inject fakes.
//
// Extract must tolerate an empty or missing path and answer (nil, nil)
// rather than fail: a file with no icon is an expected outcome, not an
// error. Implementations must attempt a per-instance lookup first and a
// file-association fallback second before declaring no icon. Any native
// handles involved must be released before Extract returns; only decoded,
// handle-free bitmaps may escape.
type Extractor interface {
	Extract(ctx context.Context, path string) (image.Image, error)
}
