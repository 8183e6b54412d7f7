package fixture

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/xlview/xlgen/internal/colour"
)

func TestSwatchPNG(t *testing.T) {
	data, err := swatchPNG(colour.RGB{R: 255}, 60, "Red")
	if err != nil {
		t.Fatalf("swatchPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 60 {
		t.Errorf("bounds = %dx%d, want 60x60", bounds.Dx(), bounds.Dy())
	}

	// Corner pixels stay the plain fill colour.
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("corner pixel = (%d, %d, %d), want (255, 0, 0)", r>>8, g>>8, b>>8)
	}
}

func TestSwatchPNGNoLabel(t *testing.T) {
	data, err := swatchPNG(colour.RGB{G: 128}, 20, "")
	if err != nil {
		t.Fatalf("swatchPNG() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestLabelColour(t *testing.T) {
	tests := []struct {
		name string
		rgb  colour.RGB
		want color.Color
	}{
		{"black swatch", colour.RGB{}, color.White},
		{"white swatch", colour.RGB{R: 255, G: 255, B: 255}, color.Black},
		{"dark blue swatch", colour.RGB{B: 255}, color.White},
		{"yellow swatch", colour.RGB{R: 255, G: 255}, color.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labelColour(tt.rgb); got != tt.want {
				t.Errorf("labelColour(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}
