package qoi

import "errors"

var (
	// ErrInvalidMagic indicates the stream does not start with "qoif".
	ErrInvalidMagic = errors.New("invalid magic")
	// ErrTruncated indicates the stream ended before a parse step got its bytes.
	ErrTruncated = errors.New("truncated input")
	// ErrInvalidEndMarker indicates the bytes after the last pixel are not the end marker.
	ErrInvalidEndMarker = errors.New("invalid end marker")
	// ErrSizeOverflow indicates the pixel region exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrTooManyPixels indicates the image exceeds ReadOptions.MaxPixels.
	ErrTooManyPixels = errors.New("too many pixels")
	// ErrOpenFile indicates QOI file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates reading the QOI payload failed.
	ErrReadFile = errors.New("read file failed")
	// ErrDecompress indicates input decompression failed.
	ErrDecompress = errors.New("decompress input failed")
)
