package qoi

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Decode decodes a complete QOI stream into its header and raw pixel
// data. The returned buffer is exactly Width*Height*4 bytes, four
// bytes per pixel in r,g,b,a order, row-major.
//
// Decode keeps no state between calls; any number of decodes may run
// concurrently.
func Decode(data []byte) (Header, []byte, error) {
	header, rest, err := decodeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	pixels, rest, err := decodePixels(rest, header)
	if err != nil {
		return Header{}, nil, err
	}

	if !bytes.Equal(rest, endMarker[:]) {
		return Header{}, nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidEndMarker, len(rest))
	}

	return header, pixels, nil
}

// decodeHeader validates the magic tag and reads the fixed 14-byte
// header, returning it together with the unread remainder of data.
func decodeHeader(data []byte) (Header, []byte, error) {
	if len(data) < headerSize {
		return Header{}, nil, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, headerSize, len(data))
	}
	if string(data[:4]) != Magic {
		return Header{}, nil, fmt.Errorf("%w: %q", ErrInvalidMagic, data[:4])
	}

	header := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}

	return header, data[headerSize:], nil
}

// decodePixels runs the opcode loop until Width*Height pixels have
// been produced, returning the flattened RGBA bytes and whatever
// bytes follow the last consumed opcode.
//
// The control byte is matched in priority order: the two full-byte
// literals first, then the 2-bit tags. That ordering is what keeps
// RUN from colliding with the 0xFE/0xFF literals.
func decodePixels(data []byte, header Header) ([]byte, []byte, error) {
	size, err := pixelDataLength(header)
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, 0, size)
	cache := [64]pixel{}
	prev := pixel{a: 255}
	pos := 0

	for len(out) < size {
		if pos >= len(data) {
			return nil, nil, fmt.Errorf("%w: opcode stream ended after %d of %d pixels", ErrTruncated, len(out)/4, size/4)
		}
		ctrl := data[pos]
		pos++

		var px pixel
		switch {
		case ctrl == OpRGB:
			if pos+3 > len(data) {
				return nil, nil, fmt.Errorf("%w: RGB operands", ErrTruncated)
			}
			px = pixel{r: data[pos], g: data[pos+1], b: data[pos+2], a: prev.a}
			pos += 3

		case ctrl == OpRGBA:
			if pos+4 > len(data) {
				return nil, nil, fmt.Errorf("%w: RGBA operands", ErrTruncated)
			}
			px = pixel{r: data[pos], g: data[pos+1], b: data[pos+2], a: data[pos+3]}
			pos += 4

		case ctrl&opMask == OpIndex:
			px = cache[ctrl&0b00111111]

		case ctrl&opMask == OpDiff:
			px = pixel{
				r: prev.r + (ctrl>>4)&0b11 - 2,
				g: prev.g + (ctrl>>2)&0b11 - 2,
				b: prev.b + ctrl&0b11 - 2,
				a: prev.a,
			}

		case ctrl&opMask == OpLuma:
			if pos >= len(data) {
				return nil, nil, fmt.Errorf("%w: LUMA operand", ErrTruncated)
			}
			dg := ctrl&0b00111111 - 32
			px = pixel{
				r: prev.r + dg + data[pos]>>4 - 8,
				g: prev.g + dg,
				b: prev.b + dg + data[pos]&0b1111 - 8,
				a: prev.a,
			}
			pos++

		default: // OpRun
			run := int(ctrl&0b00111111) + 1
			// Clamp at the pixel boundary; an over-length run is an
			// encoder fault, not a decode error. The repeated pixel is
			// already cached and already the previous pixel, so a run
			// touches neither.
			if room := (size - len(out)) / 4; run > room {
				run = room
			}
			for i := 0; i < run; i++ {
				out = append(out, prev.r, prev.g, prev.b, prev.a)
			}
			continue
		}

		out = append(out, px.r, px.g, px.b, px.a)
		cache[px.cacheSlot()] = px
		prev = px
	}

	return out, data[pos:], nil
}
