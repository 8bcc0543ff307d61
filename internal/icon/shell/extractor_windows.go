//go:build windows

package shell

import (
	"context"
	"errors"
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procSHGetFileInfoW = shell32.NewProc("SHGetFileInfoW")
	procGetIconInfo    = user32.NewProc("GetIconInfo")
	procDestroyIcon    = user32.NewProc("DestroyIcon")
	procGetDC          = user32.NewProc("GetDC")
	procReleaseDC      = user32.NewProc("ReleaseDC")
	procGetDIBits      = gdi32.NewProc("GetDIBits")
	procDeleteObject   = gdi32.NewProc("DeleteObject")
)

const (
	shgfiIcon              = 0x000000100
	shgfiLargeIcon         = 0x000000000
	shgfiUseFileAttributes = 0x000000010

	fileAttributeNormal = 0x00000080

	dibRGBColors = 0
	biRGB        = 0
)

type shFileInfo struct {
	HIcon       windows.Handle
	IIcon       int32
	Attributes  uint32
	DisplayName [260]uint16
	TypeName    [80]uint16
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Extractor asks the Windows shell for file icons. The primary strategy
// queries the file instance itself (SHGetFileInfo with the real path); the
// secondary strategy queries the extension association only, which works
// for files the shell cannot open. Every icon and bitmap handle is
// destroyed before Extract returns; only decoded pixels escape.
type Extractor struct{}

// New creates a Windows shell extractor. The data-root arguments exist for
// signature parity with the unix extractor and are ignored here.
func New(_ ...string) *Extractor {
	return &Extractor{}
}

// Extract returns the shell icon for path, or (nil, nil) when the path is
// empty or the shell has no icon for it.
func (e *Extractor) Extract(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		// Unrepresentable path has no icon.
		return nil, nil
	}

	var info shFileInfo
	ret, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		0,
		uintptr(unsafe.Pointer(&info)),
		unsafe.Sizeof(info),
		shgfiIcon|shgfiLargeIcon,
	)
	if ret == 0 || info.HIcon == 0 {
		// Association-only lookup; does not touch the file on disk.
		info = shFileInfo{}
		ret, _, _ = procSHGetFileInfoW.Call(
			uintptr(unsafe.Pointer(pathPtr)),
			fileAttributeNormal,
			uintptr(unsafe.Pointer(&info)),
			unsafe.Sizeof(info),
			shgfiIcon|shgfiLargeIcon|shgfiUseFileAttributes,
		)
		if ret == 0 || info.HIcon == 0 {
			return nil, nil
		}
	}
	defer procDestroyIcon.Call(uintptr(info.HIcon)) //nolint:errcheck

	return iconToImage(info.HIcon)
}

// iconToImage copies the pixels of a native icon handle into an RGBA
// image. The handle itself is not retained.
func iconToImage(hIcon windows.Handle) (image.Image, error) {
	var ii iconInfo
	ret, _, callErr := procGetIconInfo.Call(uintptr(hIcon), uintptr(unsafe.Pointer(&ii)))
	if ret == 0 {
		return nil, fmt.Errorf("GetIconInfo: %w", callErr)
	}
	defer procDeleteObject.Call(uintptr(ii.HbmMask)) //nolint:errcheck
	if ii.HbmColor == 0 {
		// Monochrome icon without a color plane; nothing worth showing.
		return nil, nil
	}
	defer procDeleteObject.Call(uintptr(ii.HbmColor)) //nolint:errcheck

	dc, _, _ := procGetDC.Call(0)
	if dc == 0 {
		return nil, errors.New("GetDC failed")
	}
	defer procReleaseDC.Call(0, dc) //nolint:errcheck

	var hdr bitmapInfoHeader
	hdr.Size = uint32(unsafe.Sizeof(hdr))
	ret, _, callErr = procGetDIBits.Call(dc, uintptr(ii.HbmColor), 0, 0, 0,
		uintptr(unsafe.Pointer(&hdr)), dibRGBColors)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits size query: %w", callErr)
	}

	width := int(hdr.Width)
	height := int(hdr.Height)
	if height < 0 {
		height = -height
	}
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	// Negative height requests a top-down 32-bit BGRA copy.
	hdr.Height = -int32(height)
	hdr.Planes = 1
	hdr.BitCount = 32
	hdr.Compression = biRGB
	hdr.SizeImage = 0

	buf := make([]byte, width*height*4)
	ret, _, callErr = procGetDIBits.Call(dc, uintptr(ii.HbmColor), 0, uintptr(height),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&hdr)), dibRGBColors)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits pixel copy: %w", callErr)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	opaque := true
	for i := 0; i < width*height; i++ {
		b, g, r, a := buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3]
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
		if a != 0 {
			opaque = false
		}
	}
	// Icons drawn without an alpha channel report zero everywhere.
	if opaque {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	}
	return img, nil
}
