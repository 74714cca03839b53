package domain

import "slices"

// ClassPath is an ordered, duplicate-free list of binary locations from which
// task types are loaded.
type ClassPath struct {
	locations []string
}

// EmptyClassPath is a class path without locations.
var EmptyClassPath = ClassPath{}

// NewClassPath returns a class path over locations, dropping duplicates.
func NewClassPath(locations ...string) ClassPath {
	return EmptyClassPath.Plus(ClassPath{locations: locations})
}

// Plus returns the union of cp and other, keeping cp's order first.
func (cp ClassPath) Plus(other ClassPath) ClassPath {
	if len(other.locations) == 0 {
		return cp
	}
	seen := make(map[string]struct{}, len(cp.locations)+len(other.locations))
	out := make([]string, 0, len(cp.locations)+len(other.locations))
	for _, loc := range slices.Concat(cp.locations, other.locations) {
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return ClassPath{locations: out}
}

// Locations returns a copy of the locations in order.
func (cp ClassPath) Locations() []string {
	return slices.Clone(cp.locations)
}

// Contains reports whether location is on the class path.
func (cp ClassPath) Contains(location string) bool {
	return slices.Contains(cp.locations, location)
}

// Len returns the number of locations.
func (cp ClassPath) Len() int {
	return len(cp.locations)
}
