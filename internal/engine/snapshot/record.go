package snapshot

import (
	"bytes"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/zerr"
)

// record is a decoded task together with the paths of its dependencies, which
// are resolved only once every task of the entry is known.
type record struct {
	task *domain.Task
	deps []string
}

// recordCodec encodes and decodes task segments. Every segment gets its own
// scope.
type recordCodec struct {
	registry *codec.Registry
	scope    codec.ScopeOptions
}

func (c recordCodec) encode(t *domain.Task, deps []*domain.Task, probs *problems) ([]byte, error) {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf, c.registry, codec.NewScope(c.scope))

	if err := w.WriteString(t.Project.String()); err != nil {
		return nil, err
	}
	if err := w.WriteString(t.Name.String()); err != nil {
		return nil, err
	}
	if err := w.WriteString(string(t.Type)); err != nil {
		return nil, err
	}
	paths := make([]string, len(deps))
	for i, dep := range deps {
		paths[i] = dep.Path()
	}
	if err := w.WriteStrings(paths); err != nil {
		return nil, err
	}
	if err := writeProperties(w, t, probs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c recordCodec) decode(segment []byte, loader ports.TypeLoader) (record, error) {
	r := codec.NewReader(bytes.NewReader(segment), c.registry, codec.NewScope(c.scope))

	projectPath, err := r.ReadString()
	if err != nil {
		return record{}, zerr.Wrap(err, "failed to read project path")
	}
	project, err := domain.ParseProjectPath(projectPath)
	if err != nil {
		return record{}, err
	}
	name, err := r.ReadString()
	if err != nil {
		return record{}, zerr.Wrap(err, "failed to read task name")
	}
	typeID, err := r.ReadString()
	if err != nil {
		return record{}, zerr.Wrap(err, "failed to read task type")
	}
	typ, err := loader.Load(domain.TypeID(typeID))
	if err != nil {
		return record{}, zerr.With(zerr.Wrap(err, "failed to load task type"), "task", project.TaskPath(name))
	}
	deps, err := r.ReadStrings()
	if err != nil {
		return record{}, zerr.Wrap(err, "failed to read dependencies")
	}

	b := domain.NewTask(project, name, typ.ID)
	if err := readProperties(r, b); err != nil {
		return record{}, zerr.With(err, "task", project.TaskPath(name))
	}
	task, err := b.Build()
	if err != nil {
		return record{}, err
	}
	return record{task: task, deps: deps}, nil
}

// wire resolves the dependency paths of every record against the decoded
// tasks and attaches the live edges.
func wire(records []record) ([]*domain.Task, error) {
	byPath := make(map[string]*domain.Task, len(records))
	tasks := make([]*domain.Task, len(records))
	for i, rec := range records {
		path := rec.task.Path()
		if _, exists := byPath[path]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrCorruptEntry, "duplicate task"), "task", path)
		}
		byPath[path] = rec.task
		tasks[i] = rec.task
	}

	for _, rec := range records {
		for _, dep := range rec.deps {
			target, ok := byPath[dep]
			if !ok {
				return nil, zerr.With(
					zerr.With(zerr.Wrap(domain.ErrDanglingDependency, "wire"), "task", rec.task.Path()),
					"dependency", dep,
				)
			}
			rec.task.DependsOn = append(rec.task.DependsOn, target)
		}
	}
	return tasks, nil
}
