// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"testing"
)

// collect gathers covered pixels into a set keyed by image.Point.
func collect(fill func(SpanFunc)) map[image.Point]bool {
	got := make(map[image.Point]bool)
	fill(func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			got[image.Pt(x, y)] = true
		}
	})
	return got
}

func TestRect(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)

	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"single pixel", 3, 3, 3, 3, 1},
		{"inclusive corners", 1, 1, 3, 2, 6},
		{"swapped corners", 3, 2, 1, 1, 6},
		{"clipped left top", -5, -5, 1, 1, 4},
		{"clipped right bottom", 8, 8, 20, 20, 4},
		{"fully outside", 11, 11, 20, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(s SpanFunc) { Rect(tt.x0, tt.y0, tt.x1, tt.y1, clip, s) })
			if len(got) != tt.want {
				t.Errorf("Rect(%d,%d,%d,%d) covered %d pixels, want %d",
					tt.x0, tt.y0, tt.x1, tt.y1, len(got), tt.want)
			}
			for p := range got {
				if !p.In(clip) {
					t.Errorf("pixel %v outside clip %v", p, clip)
				}
			}
		})
	}
}

func TestEllipse_SinglePixel(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)
	got := collect(func(s SpanFunc) { Ellipse(4, 4, 4, 4, clip, s) })
	if len(got) != 1 || !got[image.Pt(4, 4)] {
		t.Errorf("Ellipse single pixel covered %v, want only (4,4)", got)
	}
}

func TestEllipse_Inverted(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)
	got := collect(func(s SpanFunc) { Ellipse(5, 5, 4, 6, clip, s) })
	if len(got) != 0 {
		t.Errorf("inverted box covered %d pixels, want 0", len(got))
	}
}

func TestDisc_Radius1IsPlus(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)
	got := collect(func(s SpanFunc) { Disc(5, 5, 1, clip, s) })

	// Radius 1 covers the 3x3 block: corner centers sit at distance sqrt(2)
	// which is within r+0.5.
	if len(got) != 9 {
		t.Errorf("Disc r=1 covered %d pixels, want 9", len(got))
	}
}

func TestDisc_Symmetric(t *testing.T) {
	clip := image.Rect(0, 0, 64, 64)
	const cx, cy, r = 32, 32, 12

	got := collect(func(s SpanFunc) { Disc(cx, cy, r, clip, s) })
	for p := range got {
		dx, dy := p.X-cx, p.Y-cy
		mirrors := []image.Point{
			{cx - dx, cy + dy},
			{cx + dx, cy - dy},
			{cx + dy, cy + dx},
		}
		for _, m := range mirrors {
			if !got[m] {
				t.Fatalf("disc not symmetric: %v covered but %v not", p, m)
			}
		}
		if d2 := float64(dx*dx + dy*dy); d2 > (r+0.5)*(r+0.5) {
			t.Fatalf("pixel %v lies beyond radius %d", p, r)
		}
	}
	if !got[image.Pt(cx+r, cy)] || !got[image.Pt(cx, cy-r)] {
		t.Error("disc must reach its radius along the axes")
	}
	if got[image.Pt(cx+r+1, cy)] {
		t.Error("disc must not exceed its radius along the axes")
	}
}

func TestDisc_ClippedAtCorner(t *testing.T) {
	clip := image.Rect(0, 0, 8, 8)
	got := collect(func(s SpanFunc) { Disc(0, 0, 5, clip, s) })
	if len(got) == 0 {
		t.Fatal("clipped disc covered nothing")
	}
	for p := range got {
		if !p.In(clip) {
			t.Fatalf("pixel %v outside clip %v", p, clip)
		}
	}
}
