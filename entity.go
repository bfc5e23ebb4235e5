package neurogo

import "github.com/hupe1980/neurogo/annotation"

// Entity carries the identification and annotation bookkeeping shared by
// every object in the graph: a label, a text description, the origin of the
// data file and free-form typed annotations.
type Entity struct {
	Name        string
	Description string
	FileOrigin  string
	Annotations annotation.Annotations
}

// Annotate sets a single annotation, allocating the map on first use.
func (e *Entity) Annotate(key string, value annotation.Value) {
	if e.Annotations == nil {
		e.Annotations = annotation.Annotations{}
	}
	e.Annotations[key] = value
}

// Annotation returns the annotation stored under key, if any.
func (e *Entity) Annotation(key string) (annotation.Value, bool) {
	v, ok := e.Annotations[key]
	return v, ok
}

// RecordName returns the entity's name. It is the lookup key for merging
// named array records.
func (e *Entity) RecordName() string {
	return e.Name
}

// baseField resolves the fields every entity carries. Record types consult
// it after their own typed fields.
func (e *Entity) baseField(name string) (annotation.Value, bool) {
	switch name {
	case "name":
		return annotation.String(e.Name), true
	case "description":
		return annotation.String(e.Description), true
	case "file_origin":
		return annotation.String(e.FileOrigin), true
	default:
		return annotation.Value{}, false
	}
}
