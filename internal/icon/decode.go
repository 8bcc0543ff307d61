package icon

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the direct-image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	ico "github.com/sergeymakinen/go-ico"
)

// DecodeFile loads a direct-image file from disk.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	// ico files carrying cursor payloads trip the generic format sniffing
	// in image.Decode, so they get decoded explicitly.
	if Ext(path) == ".ico" {
		img, err := ico.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode ico: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
