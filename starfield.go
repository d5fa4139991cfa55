package nightsky

import "math/rand/v2"

const (
	// starDensity is the number of stars per working-canvas pixel.
	starDensity = 0.0012

	// twinkleChance is the probability that a star gets a plus-shaped glint.
	twinkleChance = 0.1
)

// DrawStarfield scatters single-pixel stars in one of three star colors.
//
// Per star the random stream yields x, y, the color index and the twinkle
// draw, in that order. The twinkle draw is consumed even for stars that are
// too close to an edge to show it.
func DrawStarfield(c *Canvas, pal *Palette, rng *rand.Rand) {
	colors := [...]Color{
		pal.Color(RoleStar1),
		pal.Color(RoleStar2),
		pal.Color(RoleStar3),
	}

	w, h := c.Width(), c.Height()
	n := int(float64(w*h) * starDensity)
	for range n {
		x := rng.IntN(w)
		y := rng.IntN(h)
		col := colors[rng.IntN(len(colors))]
		twinkle := rng.Float64() < twinkleChance
		plotStar(c, x, y, col, twinkle)
	}
}

// plotStar draws one star and, when twinkle is set and the star sits clear
// of the border, its four neighbours.
func plotStar(c *Canvas, x, y int, col Color, twinkle bool) {
	c.Set(x, y, col)
	if twinkle && twinkleFits(c.Width(), c.Height(), x, y) {
		c.Plus(x, y, col)
	}
}

// twinkleFits reports whether (x, y) lies at least two pixels inside every
// edge of a w x h canvas, which keeps the glint off the border rows.
func twinkleFits(w, h, x, y int) bool {
	return 1 < x && x < w-2 && 1 < y && y < h-2
}
