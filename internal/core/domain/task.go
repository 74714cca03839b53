package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// TypeID identifies a task implementation type.
type TypeID string

// Task is a configured unit of work: identity, implementation type, declared
// properties and live dependency edges.
type Task struct {
	Project   ProjectPath
	Name      InternedString
	Type      TypeID
	Outputs   []OutputProperty
	Inputs    []InputProperty
	DependsOn []*Task
}

// Path returns the stable identity of the task, e.g. ":sub:a:compile".
func (t *Task) Path() string {
	return t.Project.TaskPath(t.Name.String())
}

// Output returns the output property called name.
func (t *Task) Output(name string) (OutputProperty, bool) {
	i := slices.IndexFunc(t.Outputs, func(p OutputProperty) bool { return p.Name == name })
	if i < 0 {
		return OutputProperty{}, false
	}
	return t.Outputs[i], true
}

// Input returns the input property called name.
func (t *Task) Input(name string) (InputProperty, bool) {
	i := slices.IndexFunc(t.Inputs, func(p InputProperty) bool { return p.Name == name })
	if i < 0 {
		return InputProperty{}, false
	}
	return t.Inputs[i], true
}

// DependencyPaths returns the paths of the task's dependencies.
func (t *Task) DependencyPaths() []string {
	paths := make([]string, 0, len(t.DependsOn))
	for _, dep := range t.DependsOn {
		paths = append(paths, dep.Path())
	}
	return paths
}

// PropertyOption configures a property declared through a TaskBuilder.
type PropertyOption func(*propertyConfig)

type propertyConfig struct {
	optional      bool
	skipWhenEmpty bool
	normalizer    Normalizer
}

// Optional marks the property as optional.
func Optional() PropertyOption {
	return func(c *propertyConfig) { c.optional = true }
}

// SkipWhenEmpty marks a file input that lets the task be skipped when it has no files.
func SkipWhenEmpty() PropertyOption {
	return func(c *propertyConfig) { c.skipWhenEmpty = true }
}

// WithNormalizer sets the normalizer of a file input.
func WithNormalizer(n Normalizer) PropertyOption {
	return func(c *propertyConfig) { c.normalizer = n }
}

func newPropertyConfig(opts []PropertyOption) propertyConfig {
	c := propertyConfig{normalizer: AbsolutePathNormalizer}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TaskBuilder declares a task's properties in order.
type TaskBuilder struct {
	task *Task
	err  error
}

// NewTask starts building the task called name in project.
func NewTask(project ProjectPath, name string, typ TypeID) *TaskBuilder {
	b := &TaskBuilder{task: &Task{
		Project: project,
		Name:    NewInternedString(name),
		Type:    typ,
	}}
	switch {
	case project.IsZero():
		b.err = zerr.With(zerr.Wrap(ErrInvalidTask, "missing project"), "task", name)
	case name == "":
		b.err = zerr.With(zerr.Wrap(ErrInvalidTask, "missing name"), "project", project.String())
	case typ == "":
		b.err = zerr.With(zerr.Wrap(ErrInvalidTask, "missing type"), "task", project.TaskPath(name))
	}
	return b
}

// Output declares an output property.
func (b *TaskBuilder) Output(name string, typ OutputFileType, v ValueSource, opts ...PropertyOption) *TaskBuilder {
	if !b.checkName(name, b.hasOutput(name)) {
		return b
	}
	c := newPropertyConfig(opts)
	b.task.Outputs = append(b.task.Outputs, OutputProperty{
		Name:     name,
		Type:     typ,
		Optional: c.optional,
		Value:    v,
	})
	return b
}

// Input declares a plain value input property.
func (b *TaskBuilder) Input(name string, v ValueSource, opts ...PropertyOption) *TaskBuilder {
	if !b.checkName(name, b.hasInput(name)) {
		return b
	}
	c := newPropertyConfig(opts)
	b.task.Inputs = append(b.task.Inputs, InputProperty{
		Name:     name,
		Optional: c.optional,
		Value:    v,
	})
	return b
}

// FileInput declares a file-valued input property.
func (b *TaskBuilder) FileInput(name string, typ InputFileType, v ValueSource, opts ...PropertyOption) *TaskBuilder {
	if !b.checkName(name, b.hasInput(name)) {
		return b
	}
	c := newPropertyConfig(opts)
	b.task.Inputs = append(b.task.Inputs, InputProperty{
		Name:     name,
		Optional: c.optional,
		File: &FileInput{
			Type:          typ,
			SkipWhenEmpty: c.skipWhenEmpty,
			Normalizer:    c.normalizer,
		},
		Value: v,
	})
	return b
}

// DependsOn adds dependency edges.
func (b *TaskBuilder) DependsOn(tasks ...*Task) *TaskBuilder {
	b.task.DependsOn = append(b.task.DependsOn, tasks...)
	return b
}

// Build returns the task or the first declaration error.
func (b *TaskBuilder) Build() (*Task, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.task, nil
}

func (b *TaskBuilder) checkName(name string, exists bool) bool {
	if b.err != nil {
		return false
	}
	// The empty name terminates a property section in a cache entry.
	if name == "" {
		b.err = zerr.With(zerr.Wrap(ErrInvalidTask, "empty property name"), "task", b.task.Path())
		return false
	}
	if exists {
		b.err = zerr.With(zerr.With(zerr.Wrap(ErrDuplicateProperty, "declare"), "task", b.task.Path()), "property", name)
		return false
	}
	return true
}

func (b *TaskBuilder) hasOutput(name string) bool {
	_, ok := b.task.Output(name)
	return ok
}

func (b *TaskBuilder) hasInput(name string) bool {
	_, ok := b.task.Input(name)
	return ok
}
