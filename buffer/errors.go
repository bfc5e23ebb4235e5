package buffer

import "fmt"

// ErrShapeMismatch indicates two buffers whose non-sample-axis extents are
// incompatible.
type ErrShapeMismatch struct {
	Want Shape
	Got  Shape
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: want %s, got %s", e.Want, e.Got)
}
