package neurogo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/neurogo/buffer"
	"github.com/hupe1980/neurogo/channel"
)

// newTestMatrix builds a (rows, cols) buffer with distinct sample values.
func newTestMatrix(t *testing.T, rows, cols int) buffer.Matrix {
	t.Helper()

	m := buffer.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, float64(r*cols+c))
		}
	}
	return m
}

// newTestSignalArray builds a named array with the given channel mapping.
func newTestSignalArray(t *testing.T, name string, indexes []channel.Index, rows int) *AnalogSignalArray {
	t.Helper()

	arr := NewAnalogSignalArray(name, indexes, 1000, newTestMatrix(t, rows, len(indexes)))
	require.Equal(t, buffer.Shape{rows, len(indexes)}, arr.Shape())
	return arr
}

// newUnitSegment builds a segment with two units wired to spikes, spike
// trains, analog signals and one signal array.
//
// Layout:
//
//	u1 on channels 1, 2 — spike at 0.5, train [1 2 3]
//	u2 on channel 5     — spike at 1.5, train [4 5]
//	analog signals on channels 1, 5, 9
//	signal array "arr" on channels 5, 3, 1
func newUnitSegment(t *testing.T) (*Segment, *Unit, *Unit) {
	t.Helper()

	u1 := NewUnit("unit #1", 1, 2)
	u2 := NewUnit("unit #2", 5)

	seg := NewSegment(WithName("test"))

	sp1 := NewSpike(0.5)
	u1.AssignSpike(sp1)
	sp2 := NewSpike(1.5)
	u2.AssignSpike(sp2)
	seg.Spikes = append(seg.Spikes, sp1, sp2, NewSpike(2.5))

	st1 := NewSpikeTrain([]float64{1, 2, 3}, 0, 10)
	u1.AssignSpikeTrain(st1)
	st2 := NewSpikeTrain([]float64{4, 5}, 0, 10)
	u2.AssignSpikeTrain(st2)
	seg.SpikeTrains = append(seg.SpikeTrains, st1, st2)

	seg.AnalogSignals = append(seg.AnalogSignals,
		NewAnalogSignal(1, 1000, []float64{0, 1}),
		NewAnalogSignal(5, 1000, []float64{2, 3}),
		NewAnalogSignal(9, 1000, []float64{4, 5}),
	)

	seg.AnalogSignalArrays = append(seg.AnalogSignalArrays,
		newTestSignalArray(t, "arr", []channel.Index{5, 3, 1}, 4))

	return seg, u1, u2
}
