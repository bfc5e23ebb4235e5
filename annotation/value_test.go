package annotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	now := time.Date(2014, 6, 2, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a        Value
		b        Value
		expected bool
	}{
		{"Null_Null", Null(), Null(), true},
		{"Null_Int", Null(), Int(0), false},
		{"Int_Int_Match", Int(10), Int(10), true},
		{"Int_Int_NoMatch", Int(10), Int(11), false},
		{"Int_Float_Numeric", Int(10), Float(10.0), true},
		{"Float_Float_Match", Float(3.14), Float(3.14), true},
		{"String_Match", String("Vm"), String("Vm"), true},
		{"String_NoMatch", String("Vm"), String("Im"), false},
		{"String_Int_NoCoercion", String("10"), Int(10), false},
		{"Bool_Match", Bool(true), Bool(true), true},
		{"Bool_Int_NoCoercion", Bool(true), Int(1), false},
		{"Time_Match", Time(now), Time(now), true},
		{"Time_NoMatch", Time(now), Time(now.Add(time.Second)), false},
		{"Array_Match", Array([]Value{Int(1), String("a")}), Array([]Value{Int(1), String("a")}), true},
		{"Array_Length_NoMatch", Array([]Value{Int(1)}), Array([]Value{Int(1), Int(2)}), false},
		{"Array_Element_NoMatch", Array([]Value{Int(1)}), Array([]Value{Int(2)}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(42).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = Int(42).AsString()
	assert.False(t, ok)

	s, ok := String("hello").AsString()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	f, ok := Float(1.5).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	arr, ok := Array([]Value{Int(1)}).AsArray()
	assert.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "null", Null().Key())
	assert.Equal(t, "i:42", Int(42).Key())
	assert.Equal(t, "s:Vm", String("Vm").Key())
	assert.Equal(t, "b:1", Bool(true).Key())
	assert.Equal(t, "b:0", Bool(false).Key())
	assert.NotEqual(t, Int(1).Key(), Float(1).Key(), "keys are kind-tagged")
}

func TestAnnotationsClone(t *testing.T) {
	orig := Annotations{
		"tags":  Array([]Value{String("a"), String("b")}),
		"trial": Int(3),
	}

	clone := orig.Clone()
	clone["trial"] = Int(4)
	clone["tags"].A[0] = String("z")

	assert.Equal(t, Int(3), orig["trial"], "clone must not alias scalar entries")
	assert.Equal(t, String("a"), orig["tags"].A[0], "clone must deep copy arrays")
}

func TestCloneIfNeeded(t *testing.T) {
	assert.Nil(t, CloneIfNeeded(nil))
	assert.Nil(t, CloneIfNeeded(Annotations{}))
	assert.NotNil(t, CloneIfNeeded(Annotations{"k": Int(1)}))
}
