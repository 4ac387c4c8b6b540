package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is a chart size in pixels.
type Size struct {
	Width  int
	Height int
}

const (
	defaultWidth  = 1100
	defaultHeight = 600
	minWidth      = 320
	minHeight     = 240
)

// Clamp fills zero dimensions with defaults and enforces the minimum size.
func (s Size) Clamp() Size {
	if s.Width <= 0 {
		s.Width = defaultWidth
	}
	if s.Height <= 0 {
		s.Height = defaultHeight
	}
	if s.Width < minWidth {
		s.Width = minWidth
	}
	if s.Height < minHeight {
		s.Height = minHeight
	}
	return s
}

// Blank returns a plain white canvas; used when a chart cannot be rendered.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// Annotate draws a caption onto the bottom-left corner of img.
// Multiple lines are separated by "\n" and stacked upwards.
func Annotate(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()
	lines := strings.Split(text, "\n")
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > tw {
			tw = w
		}
	}
	pad := 6
	x := b.Min.X + 8
	bottom := b.Max.Y - 6
	top := bottom - lineH*len(lines)
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, top-pad/2, x+tw+pad, bottom+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	for i, l := range lines {
		y := top + lineH*(i+1) - face.Metrics().Descent.Ceil()
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		dr.DrawString(l)
	}
	return rgba
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "png encode")
	}
	return buf.Bytes(), nil
}

// WritePNG writes img to path.
func WritePNG(path string, img image.Image) error {
	b, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
