package codec

// ScopeOptions selects the book-keeping a Scope performs.
type ScopeOptions struct {
	DeduplicateStrings bool
	ShareObjects       bool
}

// Scope is the identity book-keeping of one task record. A fresh Scope is used
// for every record so tables never leak between tasks.
type Scope struct {
	opts ScopeOptions

	// write side
	stringIDs map[string]uint64
	objectIDs map[any]uint64

	// read side
	strings []string
	objects []any
}

// NewScope returns an empty scope.
func NewScope(opts ScopeOptions) *Scope {
	return &Scope{opts: opts}
}

// Options returns the options the scope was created with.
func (s *Scope) Options() ScopeOptions {
	return s.opts
}

// internString returns the 1-based id of a known string, or registers it and returns 0.
func (s *Scope) internString(v string) uint64 {
	if id, ok := s.stringIDs[v]; ok {
		return id
	}
	if s.stringIDs == nil {
		s.stringIDs = make(map[string]uint64)
	}
	s.stringIDs[v] = uint64(len(s.stringIDs) + 1)
	return 0
}

func (s *Scope) lookupString(id uint64) (string, bool) {
	if id == 0 || id > uint64(len(s.strings)) {
		return "", false
	}
	return s.strings[id-1], true
}

// shareObject returns the 1-based id of a known object, or registers it and returns 0.
func (s *Scope) shareObject(key any) uint64 {
	if id, ok := s.objectIDs[key]; ok {
		return id
	}
	if s.objectIDs == nil {
		s.objectIDs = make(map[any]uint64)
	}
	s.objectIDs[key] = uint64(len(s.objectIDs) + 1)
	return 0
}

// reserveObject claims the slot of the next shared object before it is decoded,
// keeping ids aligned with the write order when shared objects nest.
func (s *Scope) reserveObject() int {
	s.objects = append(s.objects, nil)
	return len(s.objects) - 1
}

func (s *Scope) lookupObject(id uint64) (any, bool) {
	if id == 0 || id > uint64(len(s.objects)) {
		return nil, false
	}
	return s.objects[id-1], true
}
