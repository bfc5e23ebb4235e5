package neurogo

import (
	"github.com/hupe1980/neurogo/annotation"
	"github.com/hupe1980/neurogo/buffer"
	"github.com/hupe1980/neurogo/channel"
)

// AnalogSignal is a regularly sampled single-channel signal. SampleRate is
// in Hz, TStart in seconds on the segment's clock.
type AnalogSignal struct {
	Entity
	ChannelIndex channel.Index
	SampleRate   float64
	TStart       float64
	Samples      []float64
}

// NewAnalogSignal creates a signal recorded on a single channel.
func NewAnalogSignal(channelIndex channel.Index, sampleRate float64, samples []float64) *AnalogSignal {
	return &AnalogSignal{
		ChannelIndex: channelIndex,
		SampleRate:   sampleRate,
		Samples:      samples,
	}
}

// Kind implements Record.
func (s *AnalogSignal) Kind() RecordKind { return RecordAnalogSignal }

// Field implements Record.
func (s *AnalogSignal) Field(name string) (annotation.Value, bool) {
	switch name {
	case "channel_index":
		return annotation.Int(int64(s.ChannelIndex)), true
	case "sampling_rate":
		return annotation.Float(s.SampleRate), true
	case "t_start":
		return annotation.Float(s.TStart), true
	default:
		return s.baseField(name)
	}
}

// Duration returns the time covered by the samples, in seconds.
func (s *AnalogSignal) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / s.SampleRate
}

// IrregularlySampledSignal is a signal with an explicit time for every
// sample instead of a fixed rate.
type IrregularlySampledSignal struct {
	Entity
	Times   []float64
	Samples []float64
}

// NewIrregularlySampledSignal creates a signal from parallel time and
// sample slices.
func NewIrregularlySampledSignal(times, samples []float64) *IrregularlySampledSignal {
	return &IrregularlySampledSignal{
		Times:   times,
		Samples: samples,
	}
}

// Kind implements Record.
func (s *IrregularlySampledSignal) Kind() RecordKind { return RecordIrregularlySampledSignal }

// Field implements Record.
func (s *IrregularlySampledSignal) Field(name string) (annotation.Value, bool) {
	return s.baseField(name)
}

// AnalogSignalArray is a regularly sampled multi-channel signal. The sample
// buffer has one column per channel; ChannelIndexes names the acquisition
// channel of each column, in column order. A nil ChannelIndexes means the
// channel mapping is unknown; such arrays are skipped by channel slicing.
// The record name is the merge/lookup key.
type AnalogSignalArray struct {
	Entity
	ChannelIndexes []channel.Index
	SampleRate     float64
	TStart         float64
	Samples        buffer.Matrix
}

// NewAnalogSignalArray creates a named multi-channel signal.
func NewAnalogSignalArray(name string, channelIndexes []channel.Index, sampleRate float64, samples buffer.Matrix) *AnalogSignalArray {
	return &AnalogSignalArray{
		Entity:         Entity{Name: name},
		ChannelIndexes: channelIndexes,
		SampleRate:     sampleRate,
		Samples:        samples,
	}
}

// Kind implements Record.
func (a *AnalogSignalArray) Kind() RecordKind { return RecordAnalogSignalArray }

// Field implements Record.
func (a *AnalogSignalArray) Field(name string) (annotation.Value, bool) {
	switch name {
	case "sampling_rate":
		return annotation.Float(a.SampleRate), true
	case "t_start":
		return annotation.Float(a.TStart), true
	default:
		return a.baseField(name)
	}
}

// Shape returns the (frames, channels) shape of the sample buffer.
func (a *AnalogSignalArray) Shape() buffer.Shape {
	return a.Samples.Shape()
}

// Merge returns a new array with other's frames appended after a's along
// the sample axis. The channel counts and sample rates must match. Both
// operands are left untouched; the result carries a's identification,
// channel mapping and a copy of its annotations.
func (a *AnalogSignalArray) Merge(other *AnalogSignalArray) (*AnalogSignalArray, error) {
	if a.SampleRate != other.SampleRate {
		return nil, &ErrSampleRateMismatch{
			Want: a.SampleRate,
			Got:  other.SampleRate,
		}
	}

	samples, err := a.Samples.ConcatRows(other.Samples)
	if err != nil {
		return nil, err
	}

	var chans []channel.Index
	if a.ChannelIndexes != nil {
		chans = concat(a.ChannelIndexes, nil)
	}

	out := &AnalogSignalArray{
		Entity: Entity{
			Name:        a.Name,
			Description: a.Description,
			FileOrigin:  a.FileOrigin,
			Annotations: annotation.CloneIfNeeded(a.Annotations),
		},
		ChannelIndexes: chans,
		SampleRate:     a.SampleRate,
		TStart:         a.TStart,
		Samples:        samples,
	}
	return out, nil
}

// SliceChannels returns a new array keeping all frames and only the
// channels whose mask entry is true. The mask is positional over the
// array's own channel ordering. The original is untouched.
func (a *AnalogSignalArray) SliceChannels(mask []bool) *AnalogSignalArray {
	kept := make([]channel.Index, 0, len(a.ChannelIndexes))
	for i, idx := range a.ChannelIndexes {
		if i < len(mask) && mask[i] {
			kept = append(kept, idx)
		}
	}

	return &AnalogSignalArray{
		Entity: Entity{
			Name:        a.Name,
			Description: a.Description,
			FileOrigin:  a.FileOrigin,
			Annotations: annotation.CloneIfNeeded(a.Annotations),
		},
		ChannelIndexes: kept,
		SampleRate:     a.SampleRate,
		TStart:         a.TStart,
		Samples:        a.Samples.SelectColumns(mask),
	}
}
