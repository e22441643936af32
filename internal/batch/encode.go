package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img in the named format: "webp", "tga" or "png".
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "tga":
		err = tga.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("batch: unknown image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("batch: encode %s: %w", format, err)
	}
	return nil
}
