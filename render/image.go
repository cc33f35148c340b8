// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/kfe/matrix"
)

// bitColor maps 1 to white and 0 to black.
func bitColor(b uint8) color.Gray {
	if b == 1 {
		return color.Gray{Y: 0xff}
	}

	return color.Gray{}
}

// Binary draws class of X with one pixel per (realization, feature):
// x is the realization, y the feature.
func Binary(X *matrix.Cube[uint8], class int) (*image.Gray, error) {
	if X == nil {
		return nil, fmt.Errorf("Binary: %w", ErrNilInput)
	}
	if class < 0 || class >= X.Classes() {
		return nil, fmt.Errorf("Binary(class=%d): %w", class, ErrClassRange)
	}

	img := image.NewGray(image.Rect(0, 0, X.Cols(), X.Rows()))
	for y := 0; y < X.Rows(); y++ {
		fiber, _ := X.Fiber(class, y)
		for x, b := range fiber {
			img.SetGray(x, y, bitColor(b))
		}
	}

	return img, nil
}

// Reference draws the reference vector of class as a vertical strip (top is
// feature 0) stretched to width×height.
func Reference(ref *matrix.Grid[uint8], class, width, height int) (*image.Gray, error) {
	if ref == nil {
		return nil, fmt.Errorf("Reference: %w", ErrNilInput)
	}
	if class < 0 || class >= ref.Rows() {
		return nil, fmt.Errorf("Reference(class=%d): %w", class, ErrClassRange)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Reference(%dx%d): %w", width, height, ErrBadSize)
	}

	bits, _ := ref.Row(class)
	strip := image.NewGray(image.Rect(0, 0, 1, len(bits)))
	for i, b := range bits {
		strip.SetGray(0, i, bitColor(b))
	}
	out := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	return out, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}
