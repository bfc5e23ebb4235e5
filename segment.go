package neurogo

import (
	"time"

	"github.com/google/uuid"
)

// Containers lists the nine child collection names in their fixed order.
// AllData concatenates the collections in exactly this order.
var Containers = []string{
	"epochs",
	"epocharrays",
	"events",
	"eventarrays",
	"analogsignals",
	"analogsignalarrays",
	"irregularlysampledsignals",
	"spikes",
	"spiketrains",
}

// Segment is a heterogeneous container for discrete and continuous data
// sharing a common clock (time basis) but not necessarily the same sampling
// rate, start or end time.
//
// The nine child collections preserve insertion order and are populated
// independently; a segment never removes an item implicitly. A segment owns
// its records exclusively. Unit and block references are by ID only and the
// core operations never read BlockID.
//
// A segment is intended to have one logical owner at a time; none of its
// methods are safe for concurrent use with Merge or direct appends.
type Segment struct {
	Entity
	ID           uuid.UUID
	BlockID      uuid.UUID
	FileDatetime time.Time
	RecDatetime  time.Time

	// Index is a caller-defined ordering hint, e.g. a trial number.
	Index int

	Epochs                    []*Epoch
	EpochArrays               []*EpochArray
	Events                    []*Event
	EventArrays               []*EventArray
	AnalogSignals             []*AnalogSignal
	AnalogSignalArrays        []*AnalogSignalArray
	IrregularlySampledSignals []*IrregularlySampledSignal
	Spikes                    []*Spike
	SpikeTrains               []*SpikeTrain

	logger *Logger
}

// NewSegment creates an empty segment with a fresh ID. Collections are
// populated by direct append, by Merge or by SubsegmentByUnit.
func NewSegment(opts ...Option) *Segment {
	s := &Segment{
		ID:     uuid.New(),
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log returns the segment's logger, falling back to a noop logger for
// segments built as struct literals.
func (s *Segment) log() *Logger {
	if s.logger == nil {
		s.logger = NoopLogger()
	}
	return s.logger
}

// AllData returns the records of all nine collections concatenated in the
// Containers order. The slice is rebuilt on every call; collections mutate
// independently, so the view is never cached.
func (s *Segment) AllData() []Record {
	n := len(s.Epochs) + len(s.EpochArrays) + len(s.Events) + len(s.EventArrays) +
		len(s.AnalogSignals) + len(s.AnalogSignalArrays) +
		len(s.IrregularlySampledSignals) + len(s.Spikes) + len(s.SpikeTrains)

	all := make([]Record, 0, n)
	for _, r := range s.Epochs {
		all = append(all, r)
	}
	for _, r := range s.EpochArrays {
		all = append(all, r)
	}
	for _, r := range s.Events {
		all = append(all, r)
	}
	for _, r := range s.EventArrays {
		all = append(all, r)
	}
	for _, r := range s.AnalogSignals {
		all = append(all, r)
	}
	for _, r := range s.AnalogSignalArrays {
		all = append(all, r)
	}
	for _, r := range s.IrregularlySampledSignals {
		all = append(all, r)
	}
	for _, r := range s.Spikes {
		all = append(all, r)
	}
	for _, r := range s.SpikeTrains {
		all = append(all, r)
	}
	return all
}

// Size returns the current length of each child collection, keyed by the
// Containers names.
func (s *Segment) Size() map[string]int {
	return map[string]int{
		"epochs":                    len(s.Epochs),
		"epocharrays":               len(s.EpochArrays),
		"events":                    len(s.Events),
		"eventarrays":               len(s.EventArrays),
		"analogsignals":             len(s.AnalogSignals),
		"analogsignalarrays":        len(s.AnalogSignalArrays),
		"irregularlysampledsignals": len(s.IrregularlySampledSignals),
		"spikes":                    len(s.Spikes),
		"spiketrains":               len(s.SpikeTrains),
	}
}
