package fixedgen

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/bodgit/fixedgen/cache"
	"github.com/bodgit/fixedgen/cgen"
	"github.com/bodgit/fixedgen/rgb555"
	"github.com/bodgit/fixedgen/texture"
	"github.com/disintegration/imaging"
)

var errBadName = errors.New("texture name is not a valid C identifier")

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (g *Generator) convert(file string) (*rgb555.Image, error) {
	m, format, err := texture.Open(file)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("Decoded \"%s\" as %s, %dx%d\n", file, format, m.Bounds().Dx(), m.Bounds().Dy())

	var src image.Image = texture.Prepare(m)
	if g.cfg.Colors > 0 {
		if src, err = texture.Quantize(src, g.cfg.Colors); err != nil {
			return nil, err
		}
	}

	return texture.Pack(src), nil
}

func (g *Generator) packTexture(file string) (*rgb555.Image, error) {
	if g.cache == nil {
		return g.convert(file)
	}

	key, err := cache.Key(file, g.cfg.Colors)
	if err != nil {
		return nil, &texture.DecodeError{File: file, Err: err}
	}

	b, err := g.cache.Get(key)
	if err != nil {
		return nil, err
	}
	if b != nil {
		if p, err := rgb555.Decode(bytes.NewReader(b), texture.Size, texture.Size); err == nil {
			g.logger.Printf("Using cached texture for \"%s\"\n", file)
			return p, nil
		}
		g.logger.Printf("Ignoring corrupt cache entry for \"%s\"\n", file)
	}

	p, err := g.convert(file)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := rgb555.Encode(buf, p); err != nil {
		return nil, err
	}
	if err := g.cache.Put(key, buf.Bytes()); err != nil {
		return nil, err
	}

	return p, nil
}

// Texture writes the image in file as an array of packed colors named
// tex_<name>. Nothing is written if the image cannot be decoded.
func (g *Generator) Texture(w io.Writer, file, name string) error {
	if !validName(name) {
		return errBadName
	}

	p, err := g.packTexture(file)
	if err != nil {
		return err
	}

	cw := cgen.NewWriter(w)
	cw.BeginArray("unsigned short", "tex_"+name)
	for _, c := range p.Pix {
		cw.Hex(uint64(c))
	}
	cw.EndArray()

	return cw.Flush()
}

// TextureBinary writes the image in file as raw little-endian packed colors.
func (g *Generator) TextureBinary(w io.Writer, file string) error {
	p, err := g.packTexture(file)
	if err != nil {
		return err
	}
	return rgb555.Encode(w, p)
}

// Preview reads a binary texture from r and writes it to w as a PNG in the
// orientation of the original image.
func (g *Generator) Preview(w io.Writer, r io.Reader) error {
	m, err := rgb555.Decode(r, texture.Size, texture.Size)
	if err != nil {
		return err
	}
	return png.Encode(w, imaging.FlipV(m))
}
