package icon

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	// NormalizedIconSize is the standard size for launcher result rows.
	NormalizedIconSize = 32
)

// Scale center-crops img to a square and scales it to size×size. Uses
// golang.org/x/image/draw with CatmullRom interpolation for quality.
func Scale(img image.Image, size int) image.Image {
	if img == nil || size <= 0 {
		return img
	}

	srcBounds := img.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	var cropRect image.Rectangle
	switch {
	case srcW > srcH:
		// Wider than tall - crop sides
		offset := (srcW - srcH) / 2
		cropRect = image.Rect(srcBounds.Min.X+offset, srcBounds.Min.Y, srcBounds.Min.X+offset+srcH, srcBounds.Max.Y)
	case srcH > srcW:
		// Taller than wide - crop top/bottom
		offset := (srcH - srcW) / 2
		cropRect = image.Rect(srcBounds.Min.X, srcBounds.Min.Y+offset, srcBounds.Max.X, srcBounds.Min.Y+offset+srcW)
	default:
		if srcW == size {
			return img
		}
		cropRect = srcBounds
	}

	cropped := cropImage(img, cropRect)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)
	return dst
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	// If the source supports SubImage, use it for efficiency
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	// Otherwise, copy pixels manually
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}
