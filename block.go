package neurogo

import "github.com/google/uuid"

// Block is the top-level grouping of segments from one recording session.
// It owns its segments; a segment points back at its block by ID only.
type Block struct {
	Entity
	ID       uuid.UUID
	Segments []*Segment
}

// NewBlock creates an empty block with a fresh ID.
func NewBlock(name string) *Block {
	return &Block{
		Entity: Entity{Name: name},
		ID:     uuid.New(),
	}
}

// AppendSegment adds a segment to the block and records the back-reference
// on the segment.
func (b *Block) AppendSegment(s *Segment) {
	s.BlockID = b.ID
	b.Segments = append(b.Segments, s)
}
