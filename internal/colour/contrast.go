// Package colour provides colour parsing and the foreground contrast
// selection used when styling fixture cells.
package colour

import "fmt"

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as six uppercase hex digits (e.g. "1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Classification is the legibility class of a background colour.
type Classification int

const (
	// Light backgrounds take black foreground text.
	Light Classification = iota
	// Dark backgrounds take white foreground text.
	Dark
)

// String returns the classification name.
func (c Classification) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

// Foreground colours recommended for each classification.
const (
	Black = "000000"
	White = "FFFFFF"
)

// ParseHex parses a hex colour string into an RGB value.
// A leading '#' is stripped, and when more than six hex digits remain the
// last six are used, so ARGB strings like "FF4472C4" parse as "4472C4".
// Returns ok=false for malformed or too-short input; it never panics.
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) < 6 {
		return RGB{}, false
	}
	s = s[len(s)-6:]

	var channels [3]uint8
	for i := range channels {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		channels[i] = hi<<4 | lo
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// hexNibble converts a single hex digit to its value.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Luminance computes the perceptual brightness of a colour on a 0-255
// scale using the ITU-R BT.601 luma weights. BT.601 approximates human
// brightness perception better than a plain channel average.
func Luminance(rgb RGB) float64 {
	return 0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)
}

// whitish backgrounds are always classified Light regardless of the
// luminance formula. The empty string covers cells with no fill at all.
var whitish = map[string]struct{}{
	"":        {},
	"FFFFFF":  {},
	"ffffff":  {},
	"#FFFFFF": {},
	"#ffffff": {},
}

// Classify determines whether a background colour is Light or Dark.
// The whitish override set wins over the formula, malformed input
// defaults to Light, and a luminance of exactly 128 is Light (the
// comparison is strictly less-than the 0-255 midpoint).
func Classify(hex string) Classification {
	if _, ok := whitish[hex]; ok {
		return Light
	}
	rgb, ok := ParseHex(hex)
	if !ok {
		return Light
	}
	if Luminance(rgb) < 128 {
		return Dark
	}
	return Light
}

// TextColourFor returns the foreground hex colour that stays legible on
// the given background fill: white on dark backgrounds, black otherwise.
func TextColourFor(backgroundHex string) string {
	if Classify(backgroundHex) == Dark {
		return White
	}
	return Black
}
