package qoi

// Magic identifies a QOI stream.
const Magic = "qoif"

const (
	// OpRGB introduces three literal r,g,b bytes; alpha is inherited.
	OpRGB = byte(0b11111110)
	// OpRGBA introduces four literal r,g,b,a bytes.
	OpRGBA = byte(0b11111111)
	// OpIndex looks a pixel up in the color cache.
	OpIndex = byte(0b00000000)
	// OpDiff carries three 2-bit channel deltas against the previous pixel.
	OpDiff = byte(0b01000000)
	// OpLuma carries a 6-bit green delta plus red/blue deltas relative to it.
	OpLuma = byte(0b10000000)
	// OpRun repeats the previous pixel.
	OpRun = byte(0b11000000)

	// opMask selects the 2-bit tag of a control byte.
	opMask = byte(0b11000000)

	// headerSize is the fixed byte length of the QOI header.
	headerSize = 14
)

// endMarker terminates every QOI stream immediately after the last pixel.
var endMarker = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Header holds the QOI container header. Channels and Colorspace are
// carried through as written; the format does not constrain them.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// pixel is one RGBA color, copied by value.
type pixel struct {
	r, g, b, a uint8
}

// cacheSlot computes the color cache position of p. Collisions are
// resolved last-write-wins; the slot function is part of the format.
func (p pixel) cacheSlot() byte {
	return (p.r*3 + p.g*5 + p.b*7 + p.a*11) % 64
}
