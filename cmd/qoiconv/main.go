package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pixelpack/qoi"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprint(os.Stderr, "Usage: qoiconv <input.qoi[.lz4|.zst]> [output.(png|bmp|tiff)]\n")
		os.Exit(1)
	}

	inputPath := os.Args[1]
	outputPath := defaultOutput(inputPath)
	if len(os.Args) == 3 {
		outputPath = os.Args[2]
	}

	if err := convert(inputPath, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		os.Exit(1)
	}
	fmt.Printf("Decoded %s → %s\n", inputPath, outputPath)
}

// defaultOutput strips the qoi and compression extensions and appends
// .png.
func defaultOutput(inputPath string) string {
	base := inputPath
	for {
		switch strings.ToLower(filepath.Ext(base)) {
		case ".qoi", ".lz4", ".zst", ".zstd":
			base = strings.TrimSuffix(base, filepath.Ext(base))
		default:
			return base + ".png"
		}
	}
}

func convert(inputPath, outputPath string) error {
	img, err := qoi.Read(inputPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return encodeOutput(out, outputPath, img)
}

// encodeOutput writes img in the raster format implied by the output
// extension. PNG is the default.
func encodeOutput(w io.Writer, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tiff", ".tif":
		return tiff.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}
