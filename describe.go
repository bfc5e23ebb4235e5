package neurogo

import (
	"fmt"
	"strings"
)

// Describe returns a human-readable summary of the segment's contents:
// one header line with non-empty collection counts, followed by a detail
// listing of the analog signals and signal arrays.
func (s *Segment) Describe() string {
	var b strings.Builder

	b.WriteString("Segment")
	if s.Name != "" {
		fmt.Fprintf(&b, " %q", s.Name)
	}

	counts := []struct {
		n        int
		readable string
	}{
		{len(s.AnalogSignals), "analogs"},
		{len(s.AnalogSignalArrays), "analog arrays"},
		{len(s.Events), "events"},
		{len(s.EventArrays), "event arrays"},
		{len(s.Epochs), "epochs"},
		{len(s.EpochArrays), "epoch arrays"},
		{len(s.IrregularlySampledSignals), "irregularly sampled signals"},
		{len(s.Spikes), "spikes"},
		{len(s.SpikeTrains), "spike trains"},
	}

	first := true
	for _, c := range counts {
		if c.n == 0 {
			continue
		}
		if first {
			b.WriteString(" with ")
			first = false
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d %s", c.n, c.readable)
	}
	b.WriteString("\n")

	if len(s.AnalogSignals) > 0 {
		fmt.Fprintf(&b, "# Analog signals (N=%d)\n", len(s.AnalogSignals))
		for i, sig := range s.AnalogSignals {
			fmt.Fprintf(&b, "%d: channel %d, %d samples @ %g Hz\n",
				i, sig.ChannelIndex, len(sig.Samples), sig.SampleRate)
		}
	}

	if len(s.AnalogSignalArrays) > 0 {
		fmt.Fprintf(&b, "# Analog signal arrays (N=%d)\n", len(s.AnalogSignalArrays))
		for i, arr := range s.AnalogSignalArrays {
			fmt.Fprintf(&b, "%d: %q %s @ %g Hz\n",
				i, arr.Name, arr.Shape(), arr.SampleRate)
		}
	}

	return b.String()
}
