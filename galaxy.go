package nightsky

import (
	"math"
	"math/rand/v2"
)

const (
	galaxyX = 0.32
	galaxyY = 0.35

	// galaxyExtent is the arm radius at the end of the spiral, as a fraction
	// of the canvas height. Color reaches andromeda_arm at this distance.
	galaxyExtent = 0.28

	galaxyArms     = 2
	galaxySteps    = 500
	galaxyWindings = 4
	galaxyMinR     = 5.0

	// galaxyJitter is the width of the multiplicative radius noise,
	// centered on 1.
	galaxyJitter = 0.2
	haloChance   = 0.2
)

// DrawGalaxy plots a two-armed spiral galaxy.
//
// For every sample the random stream yields the radius jitter and, only when
// the sample lands on the canvas, the halo draw. Samples off the canvas are
// dropped without drawing a halo value.
func DrawGalaxy(c *Canvas, pal *Palette, rng *rand.Rand) {
	core := pal.Color(RoleAndromedaCore)
	arm := pal.Color(RoleAndromedaArm)

	w, h := c.Width(), c.Height()
	gx, gy := frac(w, galaxyX), frac(h, galaxyY)
	extent := float64(h) * galaxyExtent

	for a := range galaxyArms {
		for i := range galaxySteps {
			x, y := galaxySample(gx, gy, extent, a, i, rng.Float64())
			if !c.InBounds(x, y) {
				continue
			}

			d := math.Hypot(float64(x-gx), float64(y-gy)) / extent
			col := core.Lerp(arm, math.Min(1, d))
			c.Set(x, y, col)
			if rng.Float64() < haloChance {
				c.Plus(x, y, col)
			}
		}
	}
}

// galaxySample returns the pixel of step i on arm a for a galaxy centered on
// (gx, gy). u in [0,1) is the radius jitter draw.
func galaxySample(gx, gy int, extent float64, a, i int, u float64) (x, y int) {
	offset := float64(a) * 2 * math.Pi / galaxyArms
	t := float64(i) / galaxySteps
	theta := galaxyWindings*2*math.Pi*t + offset
	radius := lerp(galaxyMinR, extent, t) * (1 - galaxyJitter/2 + galaxyJitter*u)

	return int(float64(gx) + math.Cos(theta)*radius), int(float64(gy) + math.Sin(theta)*radius)
}
