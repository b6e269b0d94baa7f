package model

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color sample.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
//
// Example:
//
//	RGB{255, 0, 128}.Hex() // "#ff0080"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// HSL returns hue in degrees [0, 360), saturation and lightness in [0, 1].
//
// Grey colors (all channels equal) have hue 0 and saturation 0.
func (c RGB) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Luminance returns the perceptual luminance of the color computed on
// the 0-255 channel values:
//
//	0.2126*R + 0.7152*G + 0.0722*B
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHex parses a "#rrggbb" (or "#rgb") string.
func ParseHex(hex string) (RGB, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
