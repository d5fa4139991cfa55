package nightsky

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Upsample magnifies src by an integer factor with nearest-neighbor sampling.
// Every source pixel becomes a scale x scale block of the same color, which
// keeps the hard pixel-art edges.
func Upsample(src image.Image, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
