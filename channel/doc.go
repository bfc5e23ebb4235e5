// Package channel provides channel index sets for correlating recording
// units with the acquisition channels they were detected on.
//
// A channel index identifies a physical or logical acquisition channel.
// Sets of channel indexes are backed by Roaring Bitmaps for fast membership
// tests and mask computation during unit-scoped selection.
package channel
