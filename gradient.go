package nightsky

import "math/rand/v2"

// DrawGradient fills the canvas with a vertical blend from bg_top on the
// first row to bg_bottom on the last. It draws no random values.
func DrawGradient(c *Canvas, pal *Palette, _ *rand.Rand) {
	top := pal.Color(RoleBgTop)
	bottom := pal.Color(RoleBgBottom)

	h := c.Height()
	for y := range h {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c.FillRow(y, top.Lerp(bottom, t))
	}
}
