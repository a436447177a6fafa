package qoi

const maxInt = int(^uint(0) >> 1)

// pixelDataLength returns the exact decoded byte length for header,
// or ErrSizeOverflow when Width*Height*4 does not fit in an int.
func pixelDataLength(header Header) (int, error) {
	n := uint64(header.Width) * uint64(header.Height)
	if n > uint64(maxInt)/4 {
		return 0, ErrSizeOverflow
	}

	return int(n) * 4, nil
}
