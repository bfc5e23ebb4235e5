package neurogo

import "github.com/hupe1980/neurogo/buffer"

// Merge merges the contents of another segment into this one, in place.
//
// Records from the six plain collections (epochs, events, analogsignals,
// irregularlysampledsignals, spikes, spiketrains) are appended in other's
// order, without deduplication. For the three named array collections
// (epocharrays, eventarrays, analogsignalarrays) an incoming record whose
// name matches an existing record is combined with it by the record-level
// Merge (concatenation along the sample axis) and replaces it; otherwise it
// is appended and registered, so later same-named records from other merge
// against it too. Same-named records already present on the receiver are
// not merged with each other; only the last one is the merge target.
//
// On a record-level failure Merge returns a *MergeError carrying the
// collection name, the incoming record's name and its shape, wrapping the
// cause; collections processed before the failure keep their merged state.
//
// The receiver's annotations are left unchanged.
func (s *Segment) Merge(other *Segment) error {
	if other == nil {
		return nil
	}

	s.Epochs = append(s.Epochs, other.Epochs...)
	s.Events = append(s.Events, other.Events...)
	s.AnalogSignals = append(s.AnalogSignals, other.AnalogSignals...)
	s.IrregularlySampledSignals = append(s.IrregularlySampledSignals, other.IrregularlySampledSignals...)
	s.Spikes = append(s.Spikes, other.Spikes...)
	s.SpikeTrains = append(s.SpikeTrains, other.SpikeTrains...)

	var err error
	if s.EpochArrays, err = mergeNamed(s.EpochArrays, other.EpochArrays, "epocharrays"); err != nil {
		s.log().LogMerge(other.ID.String(), err)
		return err
	}
	if s.EventArrays, err = mergeNamed(s.EventArrays, other.EventArrays, "eventarrays"); err != nil {
		s.log().LogMerge(other.ID.String(), err)
		return err
	}
	if s.AnalogSignalArrays, err = mergeNamed(s.AnalogSignalArrays, other.AnalogSignalArrays, "analogsignalarrays"); err != nil {
		s.log().LogMerge(other.ID.String(), err)
		return err
	}

	s.log().LogMerge(other.ID.String(), nil)

	return nil
}

// namedRecord is the capability a record needs to take part in name-keyed
// merging.
type namedRecord[T any] interface {
	RecordName() string
	Shape() buffer.Shape
	Merge(other T) (T, error)
}

// mergeNamed merges src into dst by record name. Later duplicate names in
// dst overwrite earlier ones in the lookup, so only the last same-named
// record is a merge target; all stay present in the collection.
func mergeNamed[T namedRecord[T]](dst, src []T, container string) ([]T, error) {
	lookup := make(map[string]int, len(dst))
	for i, rec := range dst {
		lookup[rec.RecordName()] = i
	}

	for _, incoming := range src {
		i, ok := lookup[incoming.RecordName()]
		if !ok {
			lookup[incoming.RecordName()] = len(dst)
			dst = append(dst, incoming)
			continue
		}

		merged, err := dst[i].Merge(incoming)
		if err != nil {
			return dst, &MergeError{
				Container: container,
				Name:      incoming.RecordName(),
				Shape:     incoming.Shape(),
				cause:     err,
			}
		}
		dst[i] = merged
	}

	return dst, nil
}
