package host

import (
	"maps"

	"github.com/puzpuzpuz/xsync/v3"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/zerr"
)

// TypeLoader resolves task types visible through one class path. It is safe
// for concurrent use.
type TypeLoader struct {
	cp       domain.ClassPath
	types    map[domain.TypeID]domain.TaskType
	resolved *xsync.MapOf[domain.TypeID, domain.TaskType]
}

func newTypeLoader(cp domain.ClassPath, types map[domain.TypeID]domain.TaskType) *TypeLoader {
	return &TypeLoader{
		cp:       cp,
		types:    maps.Clone(types),
		resolved: xsync.NewMapOf[domain.TypeID, domain.TaskType](),
	}
}

// Load returns the type with the given id.
func (l *TypeLoader) Load(id domain.TypeID) (domain.TaskType, error) {
	if t, ok := l.resolved.Load(id); ok {
		return t, nil
	}
	t, ok := l.types[id]
	if !ok {
		return domain.TaskType{}, zerr.With(zerr.Wrap(domain.ErrUnknownTaskType, "load type"), "type", string(id))
	}
	if !l.cp.Contains(t.Location) {
		return domain.TaskType{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrNotOnClassPath, "load type"),
			"type", string(id)), "location", t.Location)
	}
	t, _ = l.resolved.LoadOrStore(id, t)
	return t, nil
}

// Resolved returns the number of types resolved so far.
func (l *TypeLoader) Resolved() int {
	return l.resolved.Size()
}
