// Package ingest turns images into training matrices.
//
// Every image is resampled to realizations×features pixels (width×height)
// and reduced to the 8-bit intensity (R+G+B)/3. Pixel (x, y) becomes
// entry (y, x): rows are features, columns are realizations. One image per
// class; Training stacks them into the m×N×n cube consumed by pipeline.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP.
package ingest
