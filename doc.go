// Package neurogo models heterogeneous, time-aligned neurophysiology
// recordings as an in-memory object graph.
//
// A Segment is the aggregate root: it holds nine ordered collections of
// discrete-event data (epochs, events, spikes) and continuous or
// quasi-continuous data (analog signals, irregularly sampled signals),
// individually and in batched array form, all sharing a common time basis
// but not a common sampling rate or duration. On top of that sit a small
// relational query and merge layer: attribute/annotation filtering,
// unit- and channel-scoped selection, sub-segment construction and
// identity-preserving merging.
//
// # Quick Start
//
// Build a segment and query it:
//
//	seg := neurogo.NewSegment(neurogo.WithName("trial 1"))
//	seg.AnalogSignals = append(seg.AnalogSignals,
//	    neurogo.NewAnalogSignal(3, 10_000, samples))
//
//	vms := seg.Filter(neurogo.Match("signal_type", annotation.String("Vm")))
//
// Correlate spike-sorted units with the channels they were detected on:
//
//	unit := neurogo.NewUnit("unit #2", 3, 5)
//	sub := seg.SubsegmentByUnit([]*neurogo.Unit{unit})
//
// Merge a later recording into an earlier one; same-named signal arrays are
// concatenated along the sample axis:
//
//	if err := seg.Merge(other); err != nil {
//	    var me *neurogo.MergeError
//	    if errors.As(err, &me) {
//	        log.Fatalf("%s[%s] could not be merged: %v", me.Container, me.Name, err)
//	    }
//	}
//
// # Design
//
//   - Collections preserve insertion order; nothing is removed implicitly.
//   - Filtering probes a typed per-kind field schema first and the free-form
//     annotation map second; no reflection.
//   - Units and blocks are referenced by ID, never by owning pointer.
//   - All operations are synchronous and single-owner; a Segment must not be
//     mutated concurrently.
package neurogo
