package models

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that remembers whether it was sent at all.
//
// A Field left untouched by decoding is unset. A key sent as null makes
// the field null, and any other value makes it set with that value. This
// is what separates "leave it alone" from "clear it" in a partial update.
type Field[T any] struct {
	present bool
	valid   bool
	value   T
}

// Value returns a set field holding v.
func Value[T any](v T) Field[T] {
	return Field[T]{present: true, valid: true, value: v}
}

// Null returns a field that was explicitly sent as null.
func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

// IsSet reports whether the field was present, null or not.
func (f Field[T]) IsSet() bool {
	return f.present
}

// IsNull reports whether the field was present and null.
func (f Field[T]) IsNull() bool {
	return f.present && !f.valid
}

// Get returns the value and whether there is one.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.valid
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.valid = false
		f.value = zero
		return nil
	}

	err := json.Unmarshal(data, &f.value)
	if err != nil {
		return err
	}
	f.valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
