package buffer

import (
	"strconv"
	"strings"
)

// Shape describes the extent of a sample buffer along each axis.
type Shape []int

// String returns a human-readable representation like "(10, 2)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Equal reports whether two shapes have the same extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Matrix is a dense row-major sample buffer. Rows are frames, columns are
// channels. The zero value is an empty 0x0 matrix.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// NewMatrix creates a zero-filled matrix with the given extents.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows creates a matrix from a slice of equal-length frames.
// A ragged input returns an ErrShapeMismatch against the first frame.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Matrix{}, &ErrShapeMismatch{
				Want: Shape{len(rows), cols},
				Got:  Shape{len(rows), len(row)},
			}
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of frames.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of channels.
func (m Matrix) Cols() int { return m.cols }

// Shape returns the (rows, cols) shape of the buffer.
func (m Matrix) Shape() Shape { return Shape{m.rows, m.cols} }

// At returns the sample at frame r, channel c.
func (m Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set stores a sample at frame r, channel c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// Row returns a copy of frame r.
func (m Matrix) Row(r int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out
}

// Column returns a copy of channel c across all frames.
func (m Matrix) Column(c int) []float64 {
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+c]
	}
	return out
}

// SelectColumns returns a new matrix keeping all frames and only the columns
// whose mask entry is true. Mask entries beyond the column count are ignored
// and missing entries are treated as false.
func (m Matrix) SelectColumns(mask []bool) Matrix {
	keep := make([]int, 0, m.cols)
	for c := 0; c < m.cols && c < len(mask); c++ {
		if mask[c] {
			keep = append(keep, c)
		}
	}

	out := NewMatrix(m.rows, len(keep))
	for r := 0; r < m.rows; r++ {
		for i, c := range keep {
			out.data[r*out.cols+i] = m.data[r*m.cols+c]
		}
	}
	return out
}

// ConcatRows returns a new matrix with other's frames appended after m's.
// The column counts must match; otherwise an ErrShapeMismatch is returned.
func (m Matrix) ConcatRows(other Matrix) (Matrix, error) {
	if m.cols != other.cols {
		return Matrix{}, &ErrShapeMismatch{
			Want: m.Shape(),
			Got:  other.Shape(),
		}
	}

	out := Matrix{
		rows: m.rows + other.rows,
		cols: m.cols,
		data: make([]float64, 0, len(m.data)+len(other.data)),
	}
	out.data = append(out.data, m.data...)
	out.data = append(out.data, other.data...)
	return out, nil
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := Matrix{
		rows: m.rows,
		cols: m.cols,
		data: make([]float64, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}
