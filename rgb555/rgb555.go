/*
Package rgb555 implements the packed 15-bit color format used for textures.

Each pixel is stored as a 16-bit value with the top bit clear; red occupies
bits 0-4, green bits 5-9 and blue bits 10-14. Channels are reduced from 8 to
5 bits by truncation. The binary form is a row-major stream of little-endian
16-bit values with no header.
*/
package rgb555

import (
	"image"
	"image/color"
)

const (
	channelBits = 5
	channelMask = 1<<channelBits - 1
	greenShift  = channelBits
	blueShift   = channelBits * 2

	// Max is the largest valid packed color.
	Max = 1<<(channelBits*3) - 1
)

// Color is a packed 15-bit color.
type Color uint16

// FromRGB packs 8-bit channel values, dropping the low three bits of each.
func FromRGB(r, g, b uint8) Color {
	return Color(r>>3) | Color(g>>3)<<greenShift | Color(b>>3)<<blueShift
}

func expand(v Color) uint32 {
	x := uint32(v&channelMask)<<3 | uint32(v&channelMask)>>2
	return x | x<<8
}

// RGBA implements the color.Color interface. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(c), expand(c >> greenShift), expand(c >> blueShift), 0xffff
}

// Model converts any color to a Color. Alpha is discarded rather than
// composited, so a transparent pixel keeps its underlying color.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// Image is an in-memory image of packed colors.
type Image struct {
	Pix    []Color
	Stride int
	Rect   image.Rectangle
}

// NewImage returns a new Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model { return Model }

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle { return m.Rect }

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color { return m.ColorAt(x, y) }

// ColorAt returns the packed color at (x, y).
func (m *Image) ColorAt(x, y int) Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

// Set implements the draw.Image interface.
func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = Model.Convert(c).(Color)
}

// PixOffset returns the index into Pix of the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x - m.Rect.Min.X)
}

// FromImage converts m to packed colors in row-major order.
func FromImage(m image.Image) *Image {
	if p, ok := m.(*Image); ok {
		return p
	}

	b := m.Bounds()
	p := NewImage(b)

	// Fast path for what the texture pipeline produces
	if n, ok := m.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := n.PixOffset(x, y)
				p.Pix[p.PixOffset(x, y)] = FromRGB(n.Pix[i+0], n.Pix[i+1], n.Pix[i+2])
			}
		}
		return p
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.Set(x, y, m.At(x, y))
		}
	}
	return p
}
