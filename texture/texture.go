/*
Package texture turns arbitrary images into fixed size RGB555 textures.

The pipeline is fixed: decode, flip top-to-bottom so row 0 is the bottom of
the picture as the renderer expects, drop any alpha channel, then resample to
Size by Size with nearest-neighbour sampling so hard pixel-art edges survive.
An optional median-cut pass limits the number of distinct colors.
*/
package texture

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/bodgit/fixedgen/rgb555"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Size is the width and height of every texture.
const Size = 128

const (
	minColors = 2
	maxColors = 256
)

var errBadColors = errors.New("texture: colors must be between 2 and 256")

// DecodeError records an input that could not be turned into an image.
type DecodeError struct {
	File string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.File == "" {
		return "texture: " + e.Err.Error()
	}
	return "texture: " + e.File + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load decodes an image in any registered format, returning the format name.
func Load(r io.Reader) (image.Image, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return m, format, nil
}

// Open decodes the image stored in file.
func Open(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", &DecodeError{File: file, Err: err}
	}
	defer f.Close()

	m, format, err := Load(f)
	if err != nil {
		err.(*DecodeError).File = file
		return nil, "", err
	}
	return m, format, nil
}

// Prepare flips m vertically, makes it opaque and resamples it to Size by
// Size.
func Prepare(m image.Image) *image.NRGBA {
	flipped := imaging.FlipV(m)

	// Discard alpha rather than blending against a background
	for i := 3; i < len(flipped.Pix); i += 4 {
		flipped.Pix[i] = 0xff
	}

	return imaging.Resize(flipped, Size, Size, imaging.NearestNeighbor)
}

// Quantize reduces m to at most n colors using median cut.
func Quantize(m image.Image, n int) (*image.Paletted, error) {
	if n < minColors || n > maxColors {
		return nil, errBadColors
	}

	q := quantize.MedianCutQuantizer{}
	b := m.Bounds()

	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm, nil
}

// Pack converts every pixel of m to a packed color. Pix holds them in
// row-major order.
func Pack(m image.Image) *rgb555.Image {
	return rgb555.FromImage(m)
}
