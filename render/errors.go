// File: errors.go
// Role: sentinel errors for figure construction.

package render

import "errors"

var (
	// ErrMismatchedSeries indicates histogram and index lists of different length.
	ErrMismatchedSeries = errors.New("render: mismatched series")

	// ErrEmptyLine indicates a line without points; gonum/plot cannot draw it.
	ErrEmptyLine = errors.New("render: line has no points")
)
