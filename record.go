package neurogo

import "github.com/hupe1980/neurogo/annotation"

// RecordKind identifies the concrete type of a record in a segment.
type RecordKind uint8

const (
	// RecordEpoch is a single epoch with a start time and duration.
	RecordEpoch RecordKind = iota + 1
	// RecordEpochArray is a batch of epochs sharing one record.
	RecordEpochArray
	// RecordEvent is a single labelled point in time.
	RecordEvent
	// RecordEventArray is a batch of events sharing one record.
	RecordEventArray
	// RecordAnalogSignal is a regularly sampled single-channel signal.
	RecordAnalogSignal
	// RecordAnalogSignalArray is a regularly sampled multi-channel signal.
	RecordAnalogSignalArray
	// RecordIrregularlySampledSignal is a signal with explicit sample times.
	RecordIrregularlySampledSignal
	// RecordSpike is a single discrete spike.
	RecordSpike
	// RecordSpikeTrain is the ensemble of spike times of one unit.
	RecordSpikeTrain
)

// String returns the container-style name of the kind.
func (k RecordKind) String() string {
	switch k {
	case RecordEpoch:
		return "epoch"
	case RecordEpochArray:
		return "epocharray"
	case RecordEvent:
		return "event"
	case RecordEventArray:
		return "eventarray"
	case RecordAnalogSignal:
		return "analogsignal"
	case RecordAnalogSignalArray:
		return "analogsignalarray"
	case RecordIrregularlySampledSignal:
		return "irregularlysampledsignal"
	case RecordSpike:
		return "spike"
	case RecordSpikeTrain:
		return "spiketrain"
	default:
		return "unknown"
	}
}

// Record is the capability shared by every child object a segment stores.
//
// Field performs a typed lookup against the record's known schema
// ("time", "label", "channel_index", ...), including the base entity fields
// ("name", "description", "file_origin"). Annotation falls back to the
// free-form annotation map. Filtering probes Field first and Annotation
// second; there is no reflection involved.
type Record interface {
	// Kind returns the concrete record kind.
	Kind() RecordKind

	// Field returns the typed field stored under name, if the record's
	// schema defines it.
	Field(name string) (annotation.Value, bool)

	// Annotation returns the annotation stored under key, if any.
	Annotation(key string) (annotation.Value, bool)
}
