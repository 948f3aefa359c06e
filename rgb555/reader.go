package rgb555

import (
	"encoding/binary"
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("rgb555: not enough image data")
	errTooMuch   = errors.New("rgb555: too much image data")
	errBadSize   = errors.New("rgb555: invalid dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads width * height packed colors from r. The format carries no
// dimensions so the caller must supply them.
func Decode(r io.Reader, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}

	tmp := make([]byte, width*height*2)
	if err := readFull(r, tmp); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, errNotEnough
	}

	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTooMuch
	}

	m := NewImage(image.Rect(0, 0, width, height))
	for i := range m.Pix {
		m.Pix[i] = Color(binary.LittleEndian.Uint16(tmp[i<<1:])) & Max
	}

	return m, nil
}
