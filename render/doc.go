// Package render draws binary matrices and reference vectors as images and
// formats the training matrices as fixed-width text previews.
package render
