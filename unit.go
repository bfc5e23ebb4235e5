package neurogo

import (
	"github.com/google/uuid"

	"github.com/hupe1980/neurogo/channel"
)

// Unit is the putative single-neuron identity spikes and spike trains are
// assigned to. ChannelIndexes lists the acquisition channels the unit was
// detected on; nil means unknown.
//
// Records reference units by ID rather than by pointer, so discarding a
// segment never pins a unit (or the other way round). Selection by unit is
// an ID membership test.
type Unit struct {
	ID             uuid.UUID
	Name           string
	Description    string
	ChannelIndexes []channel.Index
}

// NewUnit creates a unit with a fresh ID detected on the given channels.
func NewUnit(name string, channelIndexes ...channel.Index) *Unit {
	return &Unit{
		ID:             uuid.New(),
		Name:           name,
		ChannelIndexes: channelIndexes,
	}
}

// AssignSpike marks the spike as belonging to this unit.
func (u *Unit) AssignSpike(s *Spike) {
	s.UnitID = u.ID
}

// AssignSpikeTrain marks the spike train as belonging to this unit.
func (u *Unit) AssignSpikeTrain(st *SpikeTrain) {
	st.UnitID = u.ID
}

// unitIDSet collects the IDs of the given units for membership tests.
// Nil units and units without an ID are skipped so that unassigned records
// (zero UnitID) can never match.
func unitIDSet(units []*Unit) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(units))
	for _, u := range units {
		if u == nil || u.ID == uuid.Nil {
			continue
		}
		ids[u.ID] = struct{}{}
	}
	return ids
}

// unitChannelIndexes concatenates the channel indexes of the given units,
// skipping units with an unknown mapping and preserving duplicates. The
// result is non-nil whenever units is non-nil.
func unitChannelIndexes(units []*Unit) []channel.Index {
	indexes := make([]channel.Index, 0)
	for _, u := range units {
		if u == nil || u.ChannelIndexes == nil {
			continue
		}
		indexes = append(indexes, u.ChannelIndexes...)
	}
	return indexes
}
