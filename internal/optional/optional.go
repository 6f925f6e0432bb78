// Package optional implements a tri-state JSON field for partial updates:
// a field can be absent from the payload, an explicit null, or a value.
// Absent fields are left untouched by an update; explicit nulls clear
// nullable columns.
package optional

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	// Present reports whether the field appeared in the payload at all.
	Present bool
	// Valid reports whether the field carried a non-null value.
	Valid bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		f.Value = zero
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Set builds a field carrying a value.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: v}
}

// Null builds a field that was an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Ptr returns the value as a nullable pointer: nil when the field was an
// explicit null.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
