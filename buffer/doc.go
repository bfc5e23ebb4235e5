// Package buffer provides the dense sample buffers carried by array-type
// records.
//
// A Matrix is a row-major buffer of float64 samples where rows are frames
// (samples in time) and columns are channels. Matrices support the two
// operations the object graph needs: column selection by boolean mask
// (channel slicing) and row concatenation (merging along the sample axis).
package buffer
