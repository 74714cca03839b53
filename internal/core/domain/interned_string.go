package domain

import "unique"

// InternedString is a task name or task path interned with unique.Make. Two
// values compare equal with == exactly when their strings are equal, which lets
// graphs key tasks by path and lets loaded tasks share names with configured ones.
// The zero value is the empty string.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
