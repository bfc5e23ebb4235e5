package neurogo

import "github.com/hupe1980/neurogo/annotation"

// Criterion is a single field-or-annotation equality condition.
type Criterion struct {
	Key   string
	Value annotation.Value
}

// Match creates a criterion requiring key to equal value.
func Match(key string, value annotation.Value) Criterion {
	return Criterion{Key: key, Value: value}
}

// Filter returns the records matching any of the criteria, in either their
// typed fields or their annotations.
//
// Criteria are evaluated in the order supplied. For each criterion the nine
// collections are scanned in AllData order; a record matches if its typed
// field under the criterion's key equals the value, or failing that, if its
// annotation under that key equals the value. Values compare exactly, never
// coerced.
//
// The result is a multiset union: a record satisfying several criteria
// appears once per criterion it satisfies. No criteria returns nothing.
//
// Example:
//
//	vms := segment.Filter(neurogo.Match("name", annotation.String("Vm")))
func (s *Segment) Filter(criteria ...Criterion) []Record {
	var results []Record
	for _, c := range criteria {
		for _, rec := range s.AllData() {
			if v, ok := rec.Field(c.Key); ok && annotation.Equal(v, c.Value) {
				results = append(results, rec)
			} else if v, ok := rec.Annotation(c.Key); ok && annotation.Equal(v, c.Value) {
				results = append(results, rec)
			}
		}
	}

	s.log().LogFilter(len(criteria), len(results))

	return results
}
