package neurogo

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/neurogo/channel"
)

func TestDescribeEmpty(t *testing.T) {
	assert.Equal(t, "Segment\n", NewSegment().Describe())
}

func TestDescribeGolden(t *testing.T) {
	seg := NewSegment(WithName("trial 1"))
	seg.AnalogSignals = append(seg.AnalogSignals,
		NewAnalogSignal(3, 1000, make([]float64, 4)),
		NewAnalogSignal(5, 1000, make([]float64, 4)),
	)
	seg.AnalogSignalArrays = append(seg.AnalogSignalArrays,
		newTestSignalArray(t, "ch1", []channel.Index{3, 5}, 3))
	seg.Events = append(seg.Events, NewEvent(1.0, "stim"))
	seg.Spikes = append(seg.Spikes, NewSpike(0.5), NewSpike(1.5))
	seg.SpikeTrains = append(seg.SpikeTrains, NewSpikeTrain([]float64{1, 2}, 0, 10))

	g := goldie.New(t)
	g.Assert(t, "describe_basic", []byte(seg.Describe()))
}
