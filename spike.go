package neurogo

import (
	"github.com/google/uuid"

	"github.com/hupe1980/neurogo/annotation"
)

// Spike is a single discrete spike, optionally with its waveform snippet.
// UnitID is a non-owning reference to the unit the spike was assigned to;
// the zero UUID means unassigned.
type Spike struct {
	Entity
	Time     float64
	Waveform []float64
	UnitID   uuid.UUID
}

// NewSpike creates a spike at the given time.
func NewSpike(time float64) *Spike {
	return &Spike{Time: time}
}

// Kind implements Record.
func (s *Spike) Kind() RecordKind { return RecordSpike }

// Field implements Record.
func (s *Spike) Field(name string) (annotation.Value, bool) {
	switch name {
	case "time":
		return annotation.Float(s.Time), true
	default:
		return s.baseField(name)
	}
}

// SpikeTrain is the ensemble of spike times emitted by one unit within
// [TStart, TStop]. UnitID is a non-owning reference to the unit; the zero
// UUID means unassigned.
type SpikeTrain struct {
	Entity
	Times  []float64
	TStart float64
	TStop  float64
	UnitID uuid.UUID
}

// NewSpikeTrain creates a spike train bounded by [tStart, tStop].
func NewSpikeTrain(times []float64, tStart, tStop float64) *SpikeTrain {
	return &SpikeTrain{
		Times:  times,
		TStart: tStart,
		TStop:  tStop,
	}
}

// Kind implements Record.
func (s *SpikeTrain) Kind() RecordKind { return RecordSpikeTrain }

// Field implements Record.
func (s *SpikeTrain) Field(name string) (annotation.Value, bool) {
	switch name {
	case "t_start":
		return annotation.Float(s.TStart), true
	case "t_stop":
		return annotation.Float(s.TStop), true
	default:
		return s.baseField(name)
	}
}
