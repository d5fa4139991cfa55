package nightsky

import (
	"image"
	"image/color"

	"github.com/gogpu/nightsky/internal/raster"
)

// Canvas is the working pixel buffer every pass draws on.
// Pixels are stored as RGBA8 with alpha always 255. All drawing methods
// clip to the canvas; later writes replace earlier ones.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a canvas of the given size filled with opaque black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	c.Fill(Black)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) is a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set sets a single pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.InBounds(x, y) {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = 0xff
}

// ColorAt returns the pixel at (x, y), or Black outside the canvas.
func (c *Canvas) ColorAt(x, y int) Color {
	if !c.InBounds(x, y) {
		return Black
	}
	i := (y*c.width + x) * 4
	return Color{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// Fill fills the entire canvas with a color.
func (c *Canvas) Fill(col Color) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = 0xff
	}
}

// FillRow fills row y with a color.
func (c *Canvas) FillRow(y int, col Color) {
	c.HLine(0, c.width-1, y, col)
}

// HLine draws a horizontal line on row y from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y int, col Color) {
	raster.Rect(x0, y, x1, y, c.clip(), c.span(col))
}

// VLine draws a vertical line on column x from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 int, col Color) {
	raster.Rect(x, y0, x, y1, c.clip(), c.span(col))
}

// FillRect fills the rectangle with inclusive corners (x0, y0) and (x1, y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col Color) {
	raster.Rect(x0, y0, x1, y1, c.clip(), c.span(col))
}

// FillEllipse fills the ellipse inscribed in the inclusive bounding box
// [x0, y0, x1, y1].
func (c *Canvas) FillEllipse(x0, y0, x1, y1 int, col Color) {
	raster.Ellipse(x0, y0, x1, y1, c.clip(), c.span(col))
}

// FillDisc fills the disc of radius r centered on pixel (cx, cy).
func (c *Canvas) FillDisc(cx, cy, r int, col Color) {
	raster.Disc(cx, cy, r, c.clip(), c.span(col))
}

// Plus draws the four direct neighbours of (x, y), skipping any that fall
// outside the canvas. The center pixel is left untouched.
func (c *Canvas) Plus(x, y int, col Color) {
	c.Set(x-1, y, col)
	c.Set(x+1, y, col)
	c.Set(x, y-1, col)
	c.Set(x, y+1, col)
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.ColorAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *Canvas) clip() image.Rectangle {
	return c.Bounds()
}

// span returns a raster.SpanFunc painting clipped runs in col.
func (c *Canvas) span(col Color) raster.SpanFunc {
	return func(y, x0, x1 int) {
		row := c.data[(y*c.width+x0)*4 : (y*c.width+x1)*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = col.R
			row[i+1] = col.G
			row[i+2] = col.B
			row[i+3] = 0xff
		}
	}
}
