package neurogo

import "github.com/hupe1980/neurogo/channel"

// SpikesByUnit returns the spikes assigned to one of the given units, in
// Spikes order. A nil unit list means "no selection" and returns nothing;
// it is not an error.
func (s *Segment) SpikesByUnit(units []*Unit) []*Spike {
	if units == nil {
		return nil
	}

	ids := unitIDSet(units)

	var out []*Spike
	for _, sp := range s.Spikes {
		if _, ok := ids[sp.UnitID]; ok {
			out = append(out, sp)
		}
	}
	return out
}

// SpikeTrainsByUnit returns the spike trains assigned to one of the given
// units, in SpikeTrains order. A nil unit list returns nothing.
func (s *Segment) SpikeTrainsByUnit(units []*Unit) []*SpikeTrain {
	if units == nil {
		return nil
	}

	ids := unitIDSet(units)

	var out []*SpikeTrain
	for _, st := range s.SpikeTrains {
		if _, ok := ids[st.UnitID]; ok {
			out = append(out, st)
		}
	}
	return out
}

// AnalogSignalsByChannelIndex returns the analog signals recorded on one of
// the given channels, in AnalogSignals order. A nil index list returns
// nothing.
func (s *Segment) AnalogSignalsByChannelIndex(indexes []channel.Index) []*AnalogSignal {
	if indexes == nil {
		return nil
	}

	set := channel.NewSet(indexes...)

	var out []*AnalogSignal
	for _, sig := range s.AnalogSignals {
		if set.Contains(sig.ChannelIndex) {
			out = append(out, sig)
		}
	}
	return out
}

// AnalogSignalsByUnit returns the analog signals recorded on the same
// channels the given units were detected on. A nil unit list returns
// nothing. Units with an unknown channel mapping contribute no channels.
func (s *Segment) AnalogSignalsByUnit(units []*Unit) []*AnalogSignal {
	if units == nil {
		return nil
	}
	return s.AnalogSignalsByChannelIndex(unitChannelIndexes(units))
}

// SliceAnalogSignalArraysByChannelIndex returns, for each signal array with
// a known channel mapping, a new array sliced down to the channels that are
// members of the given index list. The mask follows each array's own
// channel ordering, so the query order is irrelevant. Arrays with an
// unknown mapping are skipped. Originals are untouched. A nil index list
// returns nothing.
func (s *Segment) SliceAnalogSignalArraysByChannelIndex(indexes []channel.Index) []*AnalogSignalArray {
	if indexes == nil {
		return nil
	}

	set := channel.NewSet(indexes...)

	var out []*AnalogSignalArray
	for _, arr := range s.AnalogSignalArrays {
		if arr.ChannelIndexes == nil {
			continue
		}
		out = append(out, arr.SliceChannels(set.Mask(arr.ChannelIndexes)))
	}
	return out
}

// SliceAnalogSignalArraysByUnit slices the signal arrays down to the
// channels the given units were detected on. A nil unit list returns
// nothing.
func (s *Segment) SliceAnalogSignalArraysByUnit(units []*Unit) []*AnalogSignalArray {
	if units == nil {
		return nil
	}
	return s.SliceAnalogSignalArraysByChannelIndex(unitChannelIndexes(units))
}

// SubsegmentByUnit builds a new segment scoped to the given units: analog
// signals and spike trains selected by unit, signal arrays sliced by unit.
// All other collections stay empty.
//
// The result is an independent segment; appending to or reordering its
// collections does not affect the source. The selected records themselves
// are shared, not copied, except for the freshly sliced signal arrays.
//
// Segment metadata is not carried over.
// TODO: copy name, datetimes and annotations onto the sub-segment once a
// policy for derived-segment identification is settled.
func (s *Segment) SubsegmentByUnit(units []*Unit) *Segment {
	sub := NewSegment()
	sub.AnalogSignals = s.AnalogSignalsByUnit(units)
	sub.SpikeTrains = s.SpikeTrainsByUnit(units)
	sub.AnalogSignalArrays = s.SliceAnalogSignalArraysByUnit(units)

	s.log().LogSubsegment(len(units),
		len(sub.AnalogSignals), len(sub.SpikeTrains), len(sub.AnalogSignalArrays))

	return sub
}
