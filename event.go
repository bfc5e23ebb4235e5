package neurogo

import (
	"github.com/hupe1980/neurogo/annotation"
	"github.com/hupe1980/neurogo/buffer"
)

// Event is a single labelled point in time, e.g. a trigger. Time is in
// seconds on the segment's clock.
type Event struct {
	Entity
	Time  float64
	Label string
}

// NewEvent creates a labelled event.
func NewEvent(time float64, label string) *Event {
	return &Event{
		Time:  time,
		Label: label,
	}
}

// Kind implements Record.
func (e *Event) Kind() RecordKind { return RecordEvent }

// Field implements Record.
func (e *Event) Field(name string) (annotation.Value, bool) {
	switch name {
	case "time":
		return annotation.Float(e.Time), true
	case "label":
		return annotation.String(e.Label), true
	default:
		return e.baseField(name)
	}
}

// EventArray is a batch of events stored as parallel slices. The record
// name is the merge/lookup key.
type EventArray struct {
	Entity
	Times  []float64
	Labels []string
}

// NewEventArray creates a named event array from parallel slices.
func NewEventArray(name string, times []float64, labels []string) *EventArray {
	return &EventArray{
		Entity: Entity{Name: name},
		Times:  times,
		Labels: labels,
	}
}

// Kind implements Record.
func (a *EventArray) Kind() RecordKind { return RecordEventArray }

// Field implements Record.
func (a *EventArray) Field(name string) (annotation.Value, bool) {
	return a.baseField(name)
}

// Shape returns the number of events in the batch.
func (a *EventArray) Shape() buffer.Shape {
	return buffer.Shape{len(a.Times)}
}

func (a *EventArray) check() error {
	if len(a.Labels) != len(a.Times) {
		return &buffer.ErrShapeMismatch{
			Want: buffer.Shape{len(a.Times)},
			Got:  buffer.Shape{len(a.Labels)},
		}
	}
	return nil
}

// Merge returns a new event array with other's events appended after a's.
// Both operands are left untouched; the result carries a's identification
// and a copy of its annotations.
func (a *EventArray) Merge(other *EventArray) (*EventArray, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := other.check(); err != nil {
		return nil, err
	}

	out := &EventArray{
		Entity: Entity{
			Name:        a.Name,
			Description: a.Description,
			FileOrigin:  a.FileOrigin,
			Annotations: annotation.CloneIfNeeded(a.Annotations),
		},
		Times:  concat(a.Times, other.Times),
		Labels: concat(a.Labels, other.Labels),
	}
	return out, nil
}
