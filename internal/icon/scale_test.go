package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_SquareResult(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"wide", 64, 16},
		{"tall", 16, 64},
		{"square", 64, 64},
		{"already target size", NormalizedIconSize, NormalizedIconSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))

			got := Scale(src, NormalizedIconSize)

			require.NotNil(t, got)
			assert.Equal(t, NormalizedIconSize, got.Bounds().Dx())
			assert.Equal(t, NormalizedIconSize, got.Bounds().Dy())
		})
	}
}

func TestScale_PassThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))

	assert.Nil(t, Scale(nil, 32))
	assert.Same(t, image.Image(src), Scale(src, 0), "non-positive size keeps the source")
	assert.Same(t, image.Image(src), Scale(src, 8), "matching square source is returned as-is")
}
