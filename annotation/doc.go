// Package annotation provides the typed annotation values attached to
// recording entities.
//
// Annotations are free-form key/value pairs carried by every record and by
// the segment itself. Values are a small tagged union rather than
// interface{} so that filtering stays fast and predictable: no reflection
// and no fmt-based stringification.
//
// # Value Types
//
// Annotation values can be:
//
//   - String: annotation.String("Vm")
//   - Int: annotation.Int(42)
//   - Float: annotation.Float(3.14)
//   - Bool: annotation.Bool(true)
//   - Time: annotation.Time(t)
//   - Array: annotation.Array([]Value{...})
//
// Example:
//
//	ann := annotation.Annotations{
//	    "signal_type": annotation.String("Vm"),
//	    "trial":       annotation.Int(7),
//	}
package annotation
