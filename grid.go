package nightsky

import "math/rand/v2"

const (
	gridRowSpacing = 8
	gridColSpacing = 32

	// gridTop is where the vertical grid lines start, as a fraction of the
	// canvas height.
	gridTop = 0.7
)

// DrawGrid draws the neon floor grid: glow_cyan rows on every eighth row of
// the bottom third and glow_magenta columns every 32 pixels from 70% of the
// height down. It draws no random values.
func DrawGrid(c *Canvas, pal *Palette, _ *rand.Rand) {
	w, h := c.Width(), c.Height()

	cyan := pal.Color(RoleGlowCyan)
	for i := range h / 3 {
		y := h - i - 1
		if y%gridRowSpacing == 0 {
			c.HLine(0, w-1, y, cyan)
		}
	}

	magenta := pal.Color(RoleGlowMagenta)
	top := frac(h, gridTop)
	for x := 0; x < w; x += gridColSpacing {
		c.VLine(x, top, h-1, magenta)
	}
}
