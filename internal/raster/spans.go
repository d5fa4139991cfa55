// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts axis-aligned shapes into horizontal pixel spans.
//
// Shapes are given by inclusive integer bounding boxes: the box
// [x0, y0, x1, y1] covers the pixels x0..x1 and y0..y1. Every span handed to
// a SpanFunc is already clipped to the clip rectangle, so callers may write
// the whole run without further bounds checks.
package raster

import (
	"image"
	"math"
)

// SpanFunc receives one covered run on row y, from x0 (inclusive) to x1
// (exclusive). x0 < x1 always holds.
type SpanFunc func(y, x0, x1 int)

// Rect emits the spans of the filled rectangle with inclusive corners
// (x0, y0) and (x1, y1). Corners may be given in any order.
func Rect(x0, y0, x1, y1 int, clip image.Rectangle, span SpanFunc) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(clip)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		span(y, r.Min.X, r.Max.X)
	}
}

// Ellipse emits the spans of the filled ellipse inscribed in the inclusive
// bounding box [x0, y0, x1, y1].
//
// A pixel is covered when its center lies inside the ellipse whose extent is
// the box edges, so a box of a single pixel yields that pixel and a square box
// of side 2r+1 yields a disc of radius r around its middle pixel.
// An inverted box (x1 < x0 or y1 < y0) covers nothing.
func Ellipse(x0, y0, x1, y1 int, clip image.Rectangle, span SpanFunc) {
	if x1 < x0 || y1 < y0 {
		return
	}

	a := float64(x1-x0+1) / 2
	b := float64(y1-y0+1) / 2
	cx := float64(x0) + a
	cy := float64(y0) + b

	rows := image.Rect(x0, y0, x1+1, y1+1).Intersect(clip)
	if rows.Empty() {
		return
	}

	for y := rows.Min.Y; y < rows.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / b
		k := 1 - dy*dy
		if k < 0 {
			continue
		}
		half := a * math.Sqrt(k)
		xa := int(math.Ceil(cx - half - 0.5))
		xb := int(math.Floor(cx+half-0.5)) + 1
		if xa < x0 {
			xa = x0
		}
		if xb > x1+1 {
			xb = x1 + 1
		}
		if xa < clip.Min.X {
			xa = clip.Min.X
		}
		if xb > clip.Max.X {
			xb = clip.Max.X
		}
		if xa < xb {
			span(y, xa, xb)
		}
	}
}

// Disc emits the spans of the filled disc of radius r centered on pixel
// (cx, cy). It is Ellipse with the box [cx-r, cy-r, cx+r, cy+r].
func Disc(cx, cy, r int, clip image.Rectangle, span SpanFunc) {
	Ellipse(cx-r, cy-r, cx+r, cy+r, clip, span)
}
