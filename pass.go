package nightsky

import "math/rand/v2"

// PassFunc draws onto the canvas in place.
//
// rng is the single random stream of the render. A pass must consume it in a
// fixed order: the image for a seed depends on how many values every earlier
// pass has drawn.
type PassFunc func(c *Canvas, pal *Palette, rng *rand.Rand)

// Pass is a named drawing step of the pipeline.
type Pass struct {
	Name string
	Draw PassFunc
}

// DefaultPasses returns the drawing passes of the night sky in painting
// order, back to front.
func DefaultPasses() []Pass {
	return []Pass{
		{Name: "gradient", Draw: DrawGradient},
		{Name: "starfield", Draw: DrawStarfield},
		{Name: "moon", Draw: DrawMoon},
		{Name: "galaxy", Draw: DrawGalaxy},
		{Name: "silhouette", Draw: DrawSilhouette},
		{Name: "grid", Draw: DrawGrid},
	}
}

// NewRand returns the deterministic random stream for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// frac returns int(n*f), the pixel at fraction f of a dimension n.
func frac(n int, f float64) int {
	return int(float64(n) * f)
}
