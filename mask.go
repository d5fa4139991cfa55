package nightsky

import (
	"image"

	"github.com/gogpu/nightsky/internal/raster"
)

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// FillDisc overwrites the disc of radius r centered on (cx, cy) with value.
func (m *Mask) FillDisc(cx, cy, r int, value uint8) {
	raster.Disc(cx, cy, r, m.Bounds(), func(y, x0, x1 int) {
		row := m.data[y*m.width+x0 : y*m.width+x1]
		for i := range row {
			row[i] = value
		}
	})
}

// Alpha returns an *image.Alpha view sharing the mask storage, for use as
// the mask argument of draw.DrawMask.
func (m *Mask) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    m.data,
		Stride: m.width,
		Rect:   m.Bounds(),
	}
}
