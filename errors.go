package neurogo

import (
	"fmt"

	"github.com/hupe1980/neurogo/buffer"
)

// MergeError indicates that merging a named array record from another
// segment failed. It carries the collection the record lives in, the
// incoming record's name and its shape.
//
// The original underlying error can be accessed via errors.Unwrap.
type MergeError struct {
	Container string
	Name      string
	Shape     buffer.Shape
	cause     error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge failed: container=%s, name=%q, shape=%s: %v",
		e.Container, e.Name, e.Shape, e.cause)
}

func (e *MergeError) Unwrap() error { return e.cause }

// ErrSampleRateMismatch indicates an attempt to merge two signal arrays
// recorded at different sampling rates.
type ErrSampleRateMismatch struct {
	Want float64
	Got  float64
}

func (e *ErrSampleRateMismatch) Error() string {
	return fmt.Sprintf("sample rate mismatch: want %g Hz, got %g Hz", e.Want, e.Got)
}
