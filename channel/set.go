package channel

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index identifies a physical or logical acquisition channel.
type Index uint32

// Set is a set of channel indexes backed by a 32-bit Roaring Bitmap.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet creates a set containing the given indexes.
func NewSet(indexes ...Index) *Set {
	s := &Set{
		rb: roaring.New(),
	}
	for _, i := range indexes {
		s.rb.Add(uint32(i))
	}
	return s
}

// Add adds an index to the set.
func (s *Set) Add(i Index) {
	s.rb.Add(uint32(i))
}

// Remove removes an index from the set.
func (s *Set) Remove(i Index) {
	s.rb.Remove(uint32(i))
}

// Contains checks if an index is in the set.
func (s *Set) Contains(i Index) bool {
	return s.rb.Contains(uint32(i))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of indexes in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending order.
func (s *Set) Iterator() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(Index(it.Next())) {
				return
			}
		}
	}
}

// Indexes returns the members of the set in ascending order.
func (s *Set) Indexes() []Index {
	out := make([]Index, 0, s.rb.GetCardinality())
	for i := range s.Iterator() {
		out = append(out, i)
	}
	return out
}

// Union computes the union of two sets in place.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect computes the intersection of two sets in place.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Mask returns a boolean membership mask over the given indexes.
//
// The mask is ordered by the argument slice, so callers can pass a record's
// own channel ordering and slice its columns positionally.
func (s *Set) Mask(indexes []Index) []bool {
	mask := make([]bool, len(indexes))
	for i, idx := range indexes {
		mask[i] = s.rb.Contains(uint32(idx))
	}
	return mask
}
