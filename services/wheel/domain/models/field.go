package models

import (
	"bytes"
	"encoding/json"
)

// Field is a three-state patch value distinguishing "absent" (leave the
// attribute unchanged), "null" (clear it), and "set" (replace it with Value).
// JSON's absent-vs-null distinction survives decoding because a Field that
// never sees UnmarshalJSON stays in its zero state (absent).
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a Field carrying a concrete value.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null returns a Field that clears the attribute.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the field appeared in the patch at all.
func (f Field[T]) Present() bool {
	return f.present
}

// IsNull reports whether the field was an explicit JSON null.
func (f Field[T]) IsNull() bool {
	return f.present && f.null
}

// Value returns the carried value and whether one is actually set
// (present and not null).
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys that
// appear in the payload, which is what makes the absent state representable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON implements json.Marshaler. Absent fields marshal as null; use
// omitempty-free DTOs only where echoing a patch is actually needed.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
