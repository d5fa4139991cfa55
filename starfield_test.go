package nightsky

import (
	"testing"

	"github.com/go-test/deep"
)

func TestTwinkleFits_NeverLeavesCanvas(t *testing.T) {
	for _, size := range []struct{ w, h int }{
		{1, 1}, {3, 3}, {4, 4}, {5, 5}, {6, 4}, {9, 7}, {32, 18},
	} {
		for y := -1; y <= size.h; y++ {
			for x := -1; x <= size.w; x++ {
				if !twinkleFits(size.w, size.h, x, y) {
					continue
				}
				for _, n := range [][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
					if n[0] < 0 || n[0] >= size.w || n[1] < 0 || n[1] >= size.h {
						t.Fatalf("%dx%d: twinkle at (%d,%d) reaches (%d,%d)",
							size.w, size.h, x, y, n[0], n[1])
					}
				}
			}
		}
	}
}

func TestTwinkleFits(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"corner", 0, 0, false},
		{"one in", 1, 1, false},
		{"two in", 2, 2, true},
		{"far corner", 9, 9, false},
		{"w-2", 8, 5, false},
		{"w-3", 7, 5, true},
		{"top edge", 5, 0, false},
		{"bottom edge", 5, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := twinkleFits(10, 10, tt.x, tt.y); got != tt.want {
				t.Errorf("twinkleFits(10,10,%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestPlotStar_EdgesAndCorners plots a twinkling star on every pixel of a
// small canvas and checks how many pixels it paints.
func TestPlotStar_EdgesAndCorners(t *testing.T) {
	const w, h = 7, 6
	star := RGB(245, 245, 245)

	for y := range h {
		for x := range w {
			c := NewCanvas(w, h)
			plotStar(c, x, y, star, true)

			painted := 0
			for yy := range h {
				for xx := range w {
					if c.ColorAt(xx, yy) == star {
						painted++
					}
				}
			}
			want := 1
			if twinkleFits(w, h, x, y) {
				want = 5
			}
			if painted != want {
				t.Errorf("star at (%d,%d) painted %d pixels, want %d", x, y, painted, want)
			}
		}
	}
}

func TestDrawStarfield_ColorsAndCount(t *testing.T) {
	pal := DefaultPalette()
	bg := RGB(1, 2, 3)
	stars := map[Color]bool{
		pal.Color(RoleStar1): true,
		pal.Color(RoleStar2): true,
		pal.Color(RoleStar3): true,
	}

	c := NewCanvas(400, 200)
	c.Fill(bg)
	DrawStarfield(c, pal, NewRand(DefaultSeed))

	n := int(400 * 200 * starDensity)
	painted := 0
	for y := range 200 {
		for x := range 400 {
			col := c.ColorAt(x, y)
			if col == bg {
				continue
			}
			if !stars[col] {
				t.Fatalf("pixel (%d,%d) = %v is not a star color", x, y, col)
			}
			painted++
		}
	}
	if painted == 0 || painted > n*5 {
		t.Errorf("painted %d pixels for %d stars", painted, n)
	}
}

func TestDrawStarfield_Deterministic(t *testing.T) {
	pal := DefaultPalette()
	a := NewCanvas(240, 135)
	b := NewCanvas(240, 135)
	DrawStarfield(a, pal, NewRand(7))
	DrawStarfield(b, pal, NewRand(7))

	if diff := deep.Equal(a.Data(), b.Data()); diff != nil {
		t.Errorf("same seed produced different stars: %v", diff)
	}
}

func TestDrawStarfield_TinyCanvas(t *testing.T) {
	// Fewer pixels than one star per 1/starDensity: nothing is drawn and no
	// random value is consumed.
	c := NewCanvas(3, 3)
	rng := NewRand(1)
	DrawStarfield(c, DefaultPalette(), rng)

	if got, want := rng.Uint64(), NewRand(1).Uint64(); got != want {
		t.Error("starfield without stars consumed random values")
	}
}
