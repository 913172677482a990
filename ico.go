package appicon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// DefaultICOSizes are the variants included in a generated .ico: the sizes
// Windows Explorer and the taskbar commonly pick.
var DefaultICOSizes = []int{16, 32, 48, 256}

const (
	icoHeaderLen = 6
	icoEntryLen  = 16
)

// EncodeICO writes images to w as a Windows ICO container with
// PNG-compressed entries. Vista and later accept PNG payloads for every
// size, which avoids the legacy BMP plus AND-mask encoding entirely.
func EncodeICO(w io.Writer, images ...image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("ico: no images")
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("ico: encode entry %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	var out bytes.Buffer
	// ICONDIR header: reserved, type 1 (icon), image count.
	binary.Write(&out, binary.LittleEndian, uint16(0))
	binary.Write(&out, binary.LittleEndian, uint16(1))
	binary.Write(&out, binary.LittleEndian, uint16(len(images)))

	offset := icoHeaderLen + icoEntryLen*len(images)
	for i, img := range images {
		b := img.Bounds()
		// The width and height bytes hold 0 for 256 pixels and up.
		bw, bh := byte(b.Dx()), byte(b.Dy())
		if b.Dx() >= 256 {
			bw = 0
		}
		if b.Dy() >= 256 {
			bh = 0
		}
		out.WriteByte(bw)
		out.WriteByte(bh)
		out.WriteByte(0) // no color palette
		out.WriteByte(0) // reserved
		binary.Write(&out, binary.LittleEndian, uint16(1))  // color planes
		binary.Write(&out, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&out, binary.LittleEndian, uint32(len(payloads[i])))
		binary.Write(&out, binary.LittleEndian, uint32(offset))
		offset += len(payloads[i])
	}
	for _, p := range payloads {
		out.Write(p)
	}

	_, err := w.Write(out.Bytes())
	return err
}

// WriteICO scales img to each requested size (DefaultICOSizes when none are
// given) and writes the result as a .ico file at path.
func WriteICO(path string, img image.Image, sizes ...int) error {
	if len(sizes) == 0 {
		sizes = DefaultICOSizes
	}
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("ico: invalid size %d", size)
		}
		images = append(images, Scale(img, size))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeICO(f, images...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
