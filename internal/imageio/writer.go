package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// Output formats supported by Save.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// KnownFormat reports whether format names a supported output codec.
func KnownFormat(format string) bool {
	return format == FormatPNG || format == FormatWebP
}

// Save encodes img to path in the given format.
func Save(img *image.NRGBA, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	switch format {
	case FormatPNG:
		err = png.Encode(f, img)
	case FormatWebP:
		err = nativewebp.Encode(f, img, nil)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	// Close errors matter here: a full disk often only surfaces on close.
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}
