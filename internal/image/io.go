// Package image provides image encoding and file output for nightsky.
package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gen2brain/jpegli"
)

// I/O errors.
var (
	// ErrNilImage is returned when an encoder is handed a nil image.
	ErrNilImage = errors.New("image: nil image")
)

// pngEncoder trades encode time for the smallest deflate output.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG encodes img as PNG to the given writer using best compression.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := pngEncoder.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// jpegProgression selects the deepest progressive scan script jpegli offers.
const jpegProgression = 2

// EncodeJPEG encodes img as a progressive JPEG with optimized Huffman
// tables. Quality is in 1..100 and is passed through unchanged.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if img == nil {
		return ErrNilImage
	}

	opts := &jpegli.EncodingOptions{
		Quality:           quality,
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
		ProgressiveLevel:  jpegProgression,
		OptimizeCoding:    true,
	}
	if err := jpegli.Encode(w, img, opts); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves img as a PNG file.
func SavePNG(path string, img image.Image) error {
	return save(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// SaveJPEG saves img as a JPEG file with the given quality.
func SaveJPEG(path string, img image.Image, quality int) error {
	return save(path, func(w io.Writer) error {
		return EncodeJPEG(w, img, quality)
	})
}

func save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: flush: %w", err)
	}

	return f.Close()
}
