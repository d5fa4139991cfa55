package nightsky

import (
	"math"
	"math/rand/v2"
)

const (
	moonX = 0.78
	moonY = 0.28

	// moonShade scales a ring's radius fraction before mixing toward
	// moon_dark: the rim sits at 0.3, the center at 1.
	moonShade = 0.7

	craterCount = 30

	// craterSpread bounds crater centers to this fraction of the moon radius.
	craterSpread = 0.7
	craterMin    = 1
	craterMax    = 3
)

// moonGeometry returns the moon center and radius for a w x h canvas.
func moonGeometry(w, h int) (cx, cy, r int) {
	return frac(w, moonX), frac(h, moonY), h / 9
}

// crater is a small dark disc on the moon.
type crater struct {
	X, Y, R int
}

// DrawMoon paints a shaded full moon with scattered craters.
//
// The disc is drawn as concentric filled circles from the rim inward, each
// one shaded by its radius, so the innermost circles end on top. Canvases
// shorter than 9 rows have no moon and consume no random values.
func DrawMoon(c *Canvas, pal *Palette, rng *rand.Rand) {
	light := pal.Color(RoleMoonLight)
	dark := pal.Color(RoleMoonDark)
	cx, cy, radius := moonGeometry(c.Width(), c.Height())
	if radius < 1 {
		return
	}

	for r := radius; r > 0; r-- {
		t := float64(r) / float64(radius)
		c.FillDisc(cx, cy, r, light.Lerp(dark, 1-t*moonShade))
	}

	col := pal.Color(RoleCrater)
	for _, cr := range moonCraters(rng, cx, cy, radius) {
		c.FillDisc(cr.X, cr.Y, cr.R, col)
	}
}

// moonCraters draws craterCount craters from rng. Per crater the stream
// yields the angle, the distance from the moon center and the size.
//
// A crater is shrunk until it fits inside the moon disc, and dropped when
// not even the smallest size fits. That only happens on moons with a radius
// below about 15; the stream advances by three values per crater either way.
func moonCraters(rng *rand.Rand, cx, cy, radius int) []crater {
	craters := make([]crater, 0, craterCount)
	for range craterCount {
		ang := rng.Float64() * 2 * math.Pi
		d := rng.Float64() * float64(radius) * craterSpread
		size := craterMin + rng.IntN(craterMax-craterMin+1)

		x := int(float64(cx) + math.Cos(ang)*d)
		y := int(float64(cy) + math.Sin(ang)*d)
		dist := int(math.Ceil(math.Hypot(float64(x-cx), float64(y-cy))))
		size = min(size, radius-dist)
		if size < craterMin {
			continue
		}
		craters = append(craters, crater{X: x, Y: y, R: size})
	}
	return craters
}
