// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kfe/matrix"
)

// Decode reads one image in any supported format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("Decode: %w", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return img, nil
}

// resample returns img scaled to w×h with straight (non-premultiplied)
// alpha. Images already at that size are copied.
func resample(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

// Intensity resamples img to realizations×features pixels and returns the
// features×realizations intensity grid.
//
// Errors:
//   - ErrBadSize for a nil or empty image or a non-positive target.
//
// Complexity: O(features·realizations) plus resampling.
func Intensity(img image.Image, features, realizations int) (*matrix.Dense, error) {
	if features < 1 || realizations < 1 {
		return nil, fmt.Errorf("Intensity(%dx%d): %w", features, realizations, ErrBadSize)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("Intensity: empty image: %w", ErrBadSize)
	}

	px := resample(img, realizations, features)
	out, err := matrix.NewDense(features, realizations)
	if err != nil {
		return nil, fmt.Errorf("Intensity: %w", err)
	}
	for y := 0; y < features; y++ {
		row, _ := out.Row(y)
		for x := 0; x < realizations; x++ {
			c := px.NRGBAAt(x, y)
			row[x] = (float64(c.R) + float64(c.G) + float64(c.B)) / 3
		}
	}

	return out, nil
}

// Training converts one image per class into the training cube.
func Training(images []image.Image, features, realizations int) (*matrix.Cube[float64], error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("Training: %w", ErrNoImages)
	}
	slabs := make([]*matrix.Dense, len(images))
	for k, img := range images {
		g, err := Intensity(img, features, realizations)
		if err != nil {
			return nil, fmt.Errorf("Training: class %d: %w", k, err)
		}
		slabs[k] = g
	}

	Y, err := matrix.Stack(slabs...)
	if err != nil {
		return nil, fmt.Errorf("Training: %w", err)
	}

	return Y, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("DecodeFile: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// LoadFiles decodes paths concurrently (class k is paths[k]) and builds the
// training cube. The first failure cancels the remaining decodes.
func LoadFiles(ctx context.Context, paths []string, features, realizations int) (*matrix.Cube[float64], error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("LoadFiles: %w", ErrNoImages)
	}

	images := make([]image.Image, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := DecodeFile(path)
			if err != nil {
				return err
			}
			images[i] = img

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("LoadFiles: %w", err)
	}

	return Training(images, features, realizations)
}
