package postprocess

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text in the bottom-left corner of img on a translucent
// backing strip. img is modified in place and returned.
func Caption(img *image.NRGBA, text string, clr color.NRGBA) *image.NRGBA {
	if text == "" {
		return img
	}
	face := basicfont.Face7x13
	b := img.Bounds()
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()

	strip := image.Rect(b.Min.X, b.Max.Y-lineH-4, b.Max.X, b.Max.Y)
	draw.Draw(img, strip, image.NewUniform(color.NRGBA{255, 255, 255, 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(b.Min.X+3, b.Max.Y-2-m.Descent.Ceil()),
	}
	d.DrawString(text)
	return img
}
