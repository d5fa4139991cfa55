package nightsky

import (
	"fmt"
	"image/color"
)

// Color is an opaque 8-bit RGB color.
// It implements color.Color with full alpha.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Lerp performs linear interpolation between two colors.
// Each channel is computed as a + (b-a)*t and truncated toward zero,
// so t=0 yields c and t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

// String returns the color as "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// fromColor converts a standard color.Color to Color, dropping alpha.
func fromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	// #nosec G115 -- safe: v>>8 is always in range [0, 255]
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(clamp255(lerp(float64(a), float64(b), t)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)
