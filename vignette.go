package nightsky

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// vignettePeak is the highest mask value, reached near the image center.
const vignettePeak = 180

// VignetteMask builds the radial opacity mask for a w x h image.
//
// Discs centered on the image are filled from radius max(w,h)/2 down to the
// smallest positive radius in decrements of step, each overwriting the one
// before with a larger value. A pixel therefore keeps the value of the
// smallest disc covering it, and pixels outside the largest disc stay 0.
// The step leaves visible rings at coarse sizes; they are part of the look.
func VignetteMask(w, h, step int) *Mask {
	m := NewMask(w, h)
	rmax := max(w, h) / 2
	cx, cy := w/2, h/2
	for r := rmax; r > 0; r -= step {
		m.FillDisc(cx, cy, r, vignetteAlpha(r, rmax))
	}
	return m
}

// vignetteAlpha returns round(180 * (1 - r/rmax)).
func vignetteAlpha(r, rmax int) uint8 {
	return uint8(math.Round(vignettePeak * (1 - float64(r)/float64(rmax))))
}

// ApplyVignette composites img over opaque black using mask as the per-pixel
// opacity of img. The result is opaque.
func ApplyVignette(img image.Image, mask *Mask) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Draw(dst, b, image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	xdraw.DrawMask(dst, b, img, b.Min, mask.Alpha(), image.Point{}, xdraw.Over)
	return dst
}
