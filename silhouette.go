package nightsky

import "math/rand/v2"

const (
	figureX = 0.62
	figureY = 0.62
)

// part is one piece of the astronaut, in units relative to the anchor.
// Corners are inclusive.
type part struct {
	name           string
	x0, y0, x1, y1 int
	ellipse        bool
	role           Role
}

// astronaut lists the figure back to front.
var astronaut = []part{
	{name: "body", x0: -3, y0: -8, x1: 3, y1: 5, role: RoleSuit},
	{name: "helmet", x0: -4, y0: -12, x1: 4, y1: -4, ellipse: true, role: RoleHelmet},
	{name: "visor", x0: -3, y0: -10, x1: 3, y1: -7, role: RoleVisor},
	{name: "backpack", x0: 3, y0: -6, x1: 6, y1: 3, role: RoleGear},
	{name: "left arm", x0: -6, y0: -4, x1: -3, y1: -1, role: RoleGear},
	{name: "right arm", x0: 3, y0: -4, x1: 6, y1: -1, role: RoleGear},
	{name: "left leg", x0: -2, y0: 5, x1: -1, y1: 10, role: RoleGear},
	{name: "right leg", x0: 1, y0: 5, x1: 2, y1: 10, role: RoleGear},
}

// silhouetteUnit returns the size of one figure unit for a canvas height.
// It never drops below 2 so parts keep a visible size on small canvases.
func silhouetteUnit(h int) int {
	return max(2, h/72)
}

// DrawSilhouette draws a standing astronaut from rectangles and an ellipse.
// It draws no random values.
func DrawSilhouette(c *Canvas, pal *Palette, _ *rand.Rand) {
	bx, by := frac(c.Width(), figureX), frac(c.Height(), figureY)
	u := silhouetteUnit(c.Height())

	for _, p := range astronaut {
		x0, y0 := bx+p.x0*u, by+p.y0*u
		x1, y1 := bx+p.x1*u, by+p.y1*u
		col := pal.Color(p.role)
		if p.ellipse {
			c.FillEllipse(x0, y0, x1, y1, col)
		} else {
			c.FillRect(x0, y0, x1, y1, col)
		}
	}
}
