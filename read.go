package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func init() {
	image.RegisterFormat("qoi", Magic, DecodeImage, DecodeConfig)
}

// ReadOptions configures QOI reading.
type ReadOptions struct {
	// MaxPixels rejects images whose Width*Height exceeds it before
	// any pixel allocation. Zero means no limit.
	MaxPixels uint64
}

// ReadConfig reads QOI file configuration without decoding pixel data.
func ReadConfig(path string) (image.Config, error) {
	data, err := readInput(path)
	if err != nil {
		return image.Config{}, err
	}

	header, _, err := decodeHeader(data)
	if err != nil {
		return image.Config{}, err
	}

	return configFromHeader(header), nil
}

// Read reads and decodes a QOI file into an image.
func Read(path string) (image.Image, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads and decodes a QOI file with the given options.
// Nil opts applies no pixel limit.
func ReadWithOptions(path string, opts *ReadOptions) (image.Image, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxPixels > 0 {
		header, _, err := decodeHeader(data)
		if err != nil {
			return nil, err
		}
		if n := uint64(header.Width) * uint64(header.Height); n > opts.MaxPixels {
			return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPixels, n, opts.MaxPixels)
		}
	}

	header, pixels, err := Decode(data)
	if err != nil {
		return nil, err
	}

	logger().Debug("decoded qoi file",
		"path", path,
		"width", header.Width, "height", header.Height,
		"channels", header.Channels, "colorspace", header.Colorspace)

	return imageFromPixels(header, pixels), nil
}

// DecodeImage decodes a QOI stream into an image. It is the decoder
// registered with image.RegisterFormat, so image.Decode also handles
// QOI streams once this package is imported.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	header, pixels, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return imageFromPixels(header, pixels), nil
}

// DecodeConfig decodes only the QOI header from a stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}

	header, _, err := decodeHeader(buf)
	if err != nil {
		return image.Config{}, err
	}

	return configFromHeader(header), nil
}

func configFromHeader(header Header) image.Config {
	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}
}

// imageFromPixels wraps decoded RGBA bytes without copying them.
func imageFromPixels(header Header, pixels []byte) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pixels,
		Stride: int(header.Width) * 4,
		Rect:   image.Rect(0, 0, int(header.Width), int(header.Height)),
	}
}

// readInput loads the whole input file, transparently decompressing
// .lz4 and .zst/.zstd containers.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".lz4":
		data, err := io.ReadAll(lz4.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %q: %v", ErrDecompress, path, err)
		}
		return data, nil

	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %q: %v", ErrDecompress, path, err)
		}
		defer zr.Close()

		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %q: %v", ErrDecompress, path, err)
		}
		return data, nil

	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
		}
		return data, nil
	}
}
