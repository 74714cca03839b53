package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PathSeparator separates project path segments. The root project is a lone separator.
const PathSeparator = ":"

// ProjectPath identifies a project in the build tree, e.g. ":sub:a".
type ProjectPath struct {
	p string
}

// RootPath is the path of the root project.
var RootPath = ProjectPath{p: PathSeparator}

// ParseProjectPath parses an absolute project path.
func ParseProjectPath(s string) (ProjectPath, error) {
	if s == PathSeparator {
		return RootPath, nil
	}
	if !strings.HasPrefix(s, PathSeparator) || strings.HasSuffix(s, PathSeparator) {
		return ProjectPath{}, zerr.With(zerr.Wrap(ErrInvalidProjectPath, "parse"), "path", s)
	}
	for _, segment := range strings.Split(s[1:], PathSeparator) {
		if segment == "" {
			return ProjectPath{}, zerr.With(zerr.Wrap(ErrInvalidProjectPath, "empty segment"), "path", s)
		}
	}
	return ProjectPath{p: s}, nil
}

// MustParseProjectPath is like ParseProjectPath but panics on invalid input.
func MustParseProjectPath(s string) ProjectPath {
	p, err := ParseProjectPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path in its ":"-separated form.
func (p ProjectPath) String() string {
	return p.p
}

// IsZero reports whether p is the zero value.
func (p ProjectPath) IsZero() bool {
	return p.p == ""
}

// IsRoot reports whether p is the root project path.
func (p ProjectPath) IsRoot() bool {
	return p.p == PathSeparator
}

// Segments returns the names along the path, excluding the root.
func (p ProjectPath) Segments() []string {
	if p.IsZero() || p.IsRoot() {
		return nil
	}
	return strings.Split(p.p[1:], PathSeparator)
}

// Name returns the last segment, or "" for the root.
func (p ProjectPath) Name() string {
	if p.IsZero() || p.IsRoot() {
		return ""
	}
	return p.p[strings.LastIndex(p.p, PathSeparator)+1:]
}

// Parent returns the parent path. The root has no parent.
func (p ProjectPath) Parent() (ProjectPath, bool) {
	if p.IsZero() || p.IsRoot() {
		return ProjectPath{}, false
	}
	i := strings.LastIndex(p.p, PathSeparator)
	if i == 0 {
		return RootPath, true
	}
	return ProjectPath{p: p.p[:i]}, true
}

// Child returns the path of the child project called name.
func (p ProjectPath) Child(name string) ProjectPath {
	if p.IsZero() || p.IsRoot() {
		return ProjectPath{p: PathSeparator + name}
	}
	return ProjectPath{p: p.p + PathSeparator + name}
}

// IsAncestorOf reports whether p is a strict ancestor of other.
func (p ProjectPath) IsAncestorOf(other ProjectPath) bool {
	if p.IsZero() || p == other {
		return false
	}
	if p.IsRoot() {
		return !other.IsZero()
	}
	return strings.HasPrefix(other.p, p.p+PathSeparator)
}

// Compare orders paths segment by segment so that ancestors sort before
// their descendants and siblings sort by name.
func (p ProjectPath) Compare(other ProjectPath) int {
	a, b := p.Segments(), other.Segments()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// TaskPath returns the path of the task called name inside p.
func (p ProjectPath) TaskPath(name string) string {
	if p.IsZero() || p.IsRoot() {
		return PathSeparator + name
	}
	return p.p + PathSeparator + name
}
