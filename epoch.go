package neurogo

import (
	"github.com/hupe1980/neurogo/annotation"
	"github.com/hupe1980/neurogo/buffer"
)

// Epoch is a single time interval with a label, e.g. one stimulus
// presentation. Time and Duration are in seconds on the segment's clock.
type Epoch struct {
	Entity
	Time     float64
	Duration float64
	Label    string
}

// NewEpoch creates an epoch covering [time, time+duration).
func NewEpoch(time, duration float64, label string) *Epoch {
	return &Epoch{
		Time:     time,
		Duration: duration,
		Label:    label,
	}
}

// Kind implements Record.
func (e *Epoch) Kind() RecordKind { return RecordEpoch }

// Field implements Record.
func (e *Epoch) Field(name string) (annotation.Value, bool) {
	switch name {
	case "time":
		return annotation.Float(e.Time), true
	case "duration":
		return annotation.Float(e.Duration), true
	case "label":
		return annotation.String(e.Label), true
	default:
		return e.baseField(name)
	}
}

// EpochArray is a batch of epochs stored as parallel slices. The record
// name is the merge/lookup key.
type EpochArray struct {
	Entity
	Times     []float64
	Durations []float64
	Labels    []string
}

// NewEpochArray creates a named epoch array from parallel slices.
func NewEpochArray(name string, times, durations []float64, labels []string) *EpochArray {
	return &EpochArray{
		Entity:    Entity{Name: name},
		Times:     times,
		Durations: durations,
		Labels:    labels,
	}
}

// Kind implements Record.
func (a *EpochArray) Kind() RecordKind { return RecordEpochArray }

// Field implements Record.
func (a *EpochArray) Field(name string) (annotation.Value, bool) {
	return a.baseField(name)
}

// Shape returns the number of epochs in the batch.
func (a *EpochArray) Shape() buffer.Shape {
	return buffer.Shape{len(a.Times)}
}

// check verifies that the parallel slices agree in length.
func (a *EpochArray) check() error {
	if len(a.Durations) != len(a.Times) {
		return &buffer.ErrShapeMismatch{
			Want: buffer.Shape{len(a.Times)},
			Got:  buffer.Shape{len(a.Durations)},
		}
	}
	if len(a.Labels) != len(a.Times) {
		return &buffer.ErrShapeMismatch{
			Want: buffer.Shape{len(a.Times)},
			Got:  buffer.Shape{len(a.Labels)},
		}
	}
	return nil
}

// Merge returns a new epoch array with other's epochs appended after a's.
// Both operands are left untouched; the result carries a's identification
// and a copy of its annotations.
func (a *EpochArray) Merge(other *EpochArray) (*EpochArray, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := other.check(); err != nil {
		return nil, err
	}

	out := &EpochArray{
		Entity: Entity{
			Name:        a.Name,
			Description: a.Description,
			FileOrigin:  a.FileOrigin,
			Annotations: annotation.CloneIfNeeded(a.Annotations),
		},
		Times:     concat(a.Times, other.Times),
		Durations: concat(a.Durations, other.Durations),
		Labels:    concat(a.Labels, other.Labels),
	}
	return out, nil
}

// concat returns a fresh slice holding a followed by b.
func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
