package rgb555

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"
)

// Encode writes the Image m to w as packed little-endian colors.
func Encode(w io.Writer, m image.Image) error {
	p := FromImage(m)
	b := p.Bounds()

	bw := bufio.NewWriter(w)

	var tmp [2]byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			binary.LittleEndian.PutUint16(tmp[:], uint16(p.ColorAt(x, y)))
			if _, err := bw.Write(tmp[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
