package fixture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/xlview/xlgen/internal/colour"
)

// swatchPNG renders a solid-colour square with a centred text label and
// returns it PNG-encoded. The label colour comes from the contrast
// selector, so it stays legible on any swatch colour.
func swatchPNG(rgb colour.RGB, size int, label string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)

	if label != "" {
		face := basicfont.Face7x13
		width := font.MeasureString(face, label).Ceil()
		drawer := &font.Drawer{
			Dst:  img,
			Src:  &image.Uniform{C: labelColour(rgb)},
			Face: face,
			Dot: fixed.P(
				(size-width)/2,
				(size+face.Ascent)/2,
			),
		}
		drawer.DrawString(label)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}
	return buf.Bytes(), nil
}

// labelColour picks black or white for text drawn over the swatch.
func labelColour(background colour.RGB) color.Color {
	if colour.Classify(background.Hex()) == colour.Dark {
		return color.White
	}
	return color.Black
}
