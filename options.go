package neurogo

import (
	"time"

	"github.com/hupe1980/neurogo/annotation"
)

// Option configures a segment at construction time.
type Option func(*Segment)

// WithName sets the segment's label.
func WithName(name string) Option {
	return func(s *Segment) {
		s.Name = name
	}
}

// WithDescription sets the segment's text description.
func WithDescription(description string) Option {
	return func(s *Segment) {
		s.Description = description
	}
}

// WithFileOrigin sets the filesystem path or URL of the original data file.
func WithFileOrigin(fileOrigin string) Option {
	return func(s *Segment) {
		s.FileOrigin = fileOrigin
	}
}

// WithFileDatetime sets the creation time of the original data file.
func WithFileDatetime(t time.Time) Option {
	return func(s *Segment) {
		s.FileDatetime = t
	}
}

// WithRecDatetime sets the time of the original recording.
func WithRecDatetime(t time.Time) Option {
	return func(s *Segment) {
		s.RecDatetime = t
	}
}

// WithIndex sets the caller-defined ordering hint, e.g. a trial number.
func WithIndex(index int) Option {
	return func(s *Segment) {
		s.Index = index
	}
}

// WithAnnotations sets the segment's initial annotations.
func WithAnnotations(a annotation.Annotations) Option {
	return func(s *Segment) {
		s.Annotations = a
	}
}

// WithLogger sets the logger used by the segment's operations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(s *Segment) {
		if l == nil {
			l = NoopLogger()
		}
		s.logger = l
	}
}
