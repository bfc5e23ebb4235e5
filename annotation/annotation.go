package annotation

// Annotations is a free-form mapping of annotation keys to typed values.
type Annotations map[string]Value

// Clone creates a deep copy of the annotations.
//
// This is the safe default to prevent external mutation after a record has
// been handed to a segment. Values are deep copied, including arrays.
func (a Annotations) Clone() Annotations {
	if a == nil {
		return nil
	}

	clone := make(Annotations, len(a))
	for k, v := range a {
		clone[k] = v.clone()
	}
	return clone
}

// clone creates a deep copy of a Value, including nested arrays.
func (v Value) clone() Value {
	if v.Kind != KindArray || len(v.A) == 0 {
		// Simple values are copied by value semantics
		return v
	}

	arrayCopy := make([]Value, len(v.A))
	for i := range v.A {
		arrayCopy[i] = v.A[i].clone()
	}

	return Value{
		Kind: v.Kind,
		I64:  v.I64,
		F64:  v.F64,
		S:    v.S,
		B:    v.B,
		T:    v.T,
		A:    arrayCopy,
	}
}

// CloneIfNeeded clones annotations only if they are non-nil and non-empty.
//
// This helper avoids allocation for empty annotations, which is common.
// Returns nil if the input is nil or empty.
func CloneIfNeeded(a Annotations) Annotations {
	if len(a) == 0 {
		return nil
	}
	return a.Clone()
}
