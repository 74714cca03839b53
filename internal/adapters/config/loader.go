// Package config loads the build definition and the engine options.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// BuildLoader implements ports.BuildLoader using a YAML build definition.
type BuildLoader struct{}

var _ ports.BuildLoader = (*BuildLoader)(nil)

// NewBuildLoader creates a new BuildLoader.
func NewBuildLoader() *BuildLoader {
	return &BuildLoader{}
}

// Load reads the build definition at path. Relative file values are resolved
// against the directory containing it.
func (l *BuildLoader) Load(path string) (*domain.Build, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read build file"), "path", path)
	}

	var file Buildfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse build file"), "path", path)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve build directory")
	}
	return newBuilder(dir, &file).build()
}

type builder struct {
	dir         string
	file        *Buildfile
	collections map[string]*domain.FileCollection
}

func newBuilder(dir string, file *Buildfile) *builder {
	return &builder{
		dir:         dir,
		file:        file,
		collections: make(map[string]*domain.FileCollection, len(file.Collections)),
	}
}

func (b *builder) build() (*domain.Build, error) {
	build := &domain.Build{
		RootProjectName: b.file.Root,
		Projects:        []domain.ProjectPath{domain.RootPath},
		Tasks:           domain.NewGraph(),
	}
	if build.RootProjectName == "" {
		build.RootProjectName = filepath.Base(b.dir)
	}

	for _, s := range b.file.Projects {
		p, err := domain.ParseProjectPath(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(build.Projects, p) {
			build.Projects = append(build.Projects, p)
		}
	}

	ids := make([]string, 0, len(b.file.Types))
	for id := range b.file.Types {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		build.Types = append(build.Types, domain.TaskType{ID: domain.TypeID(id), Location: b.file.Types[id]})
	}

	// Tasks are created first and linked once every path is known.
	tasks := make([]*domain.Task, 0, len(b.file.Tasks))
	for _, dto := range b.file.Tasks {
		t, err := b.task(dto)
		if err != nil {
			return nil, err
		}
		if err := build.Tasks.AddTask(t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	for i, dto := range b.file.Tasks {
		for _, dep := range dto.DependsOn {
			target, ok := build.Tasks.Task(dep)
			if !ok {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingDependency, "load"),
					"task", tasks[i].Path()), "dependency", dep)
			}
			tasks[i].DependsOn = append(tasks[i].DependsOn, target)
		}
	}
	return build, nil
}

func (b *builder) task(dto TaskDTO) (*domain.Task, error) {
	project, name, err := splitTaskPath(dto.Path)
	if err != nil {
		return nil, err
	}
	tb := domain.NewTask(project, name, domain.TypeID(dto.Type))

	for _, out := range dto.Outputs {
		if err := b.output(tb, out); err != nil {
			return nil, zerr.With(err, "task", dto.Path)
		}
	}
	for _, in := range dto.Inputs {
		if err := b.input(tb, in); err != nil {
			return nil, zerr.With(err, "task", dto.Path)
		}
	}
	return tb.Build()
}

func (b *builder) output(tb *domain.TaskBuilder, dto OutputDTO) error {
	var opts []domain.PropertyOption
	if dto.Optional {
		opts = append(opts, domain.Optional())
	}

	value, err := b.fileValue(dto.Value, false)
	if err != nil {
		return zerr.With(err, "property", dto.Name)
	}

	typ := domain.OutputFile
	switch {
	case dto.Type != "":
		if typ, err = domain.ParseOutputFileType(dto.Type); err != nil {
			return zerr.With(err, "property", dto.Name)
		}
	case isList(dto.Value):
		typ = domain.OutputFiles
	}
	tb.Output(dto.Name, typ, value, opts...)
	return nil
}

func (b *builder) input(tb *domain.TaskBuilder, dto InputDTO) error {
	var opts []domain.PropertyOption
	if dto.Optional {
		opts = append(opts, domain.Optional())
	}

	if dto.File == "" && dto.Collection == "" {
		if dto.Value == nil {
			tb.Input(dto.Name, domain.Absent(), opts...)
		} else {
			tb.Input(dto.Name, domain.Value(dto.Value), opts...)
		}
		return nil
	}

	typ := domain.InputFiles
	if dto.File != "" {
		var err error
		if typ, err = domain.ParseInputFileType(dto.File); err != nil {
			return zerr.With(err, "property", dto.Name)
		}
	}
	if dto.SkipWhenEmpty {
		opts = append(opts, domain.SkipWhenEmpty())
	}
	if dto.Normalizer != "" {
		opts = append(opts, domain.WithNormalizer(domain.Normalizer(dto.Normalizer)))
	}

	var value domain.ValueSource
	if dto.Collection != "" {
		c, err := b.collection(dto.Collection)
		if err != nil {
			return zerr.With(err, "property", dto.Name)
		}
		value = domain.Value(c)
	} else {
		v, err := b.fileValue(dto.Value, true)
		if err != nil {
			return zerr.With(err, "property", dto.Name)
		}
		value = v
	}
	tb.FileInput(dto.Name, typ, value, opts...)
	return nil
}

// fileValue converts a path or a list of paths. Lists become a
// *domain.FileCollection when asCollection is set and []domain.File otherwise.
func (b *builder) fileValue(raw any, asCollection bool) (domain.ValueSource, error) {
	switch v := raw.(type) {
	case nil:
		return domain.Absent(), nil
	case string:
		return domain.Value(b.resolve(v)), nil
	case []any:
		files, err := b.files(v)
		if err != nil {
			return nil, err
		}
		if asCollection {
			return domain.Value(&domain.FileCollection{Files: files}), nil
		}
		return domain.Value(files), nil
	default:
		return nil, zerr.With(zerr.New("file value must be a path or a list of paths"), "value", raw)
	}
}

func (b *builder) files(list []any) ([]domain.File, error) {
	files := make([]domain.File, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, zerr.With(zerr.New("file list entries must be paths"), "value", item)
		}
		files = append(files, b.resolve(s))
	}
	return files, nil
}

// collection returns the shared collection called name, creating it on first use.
func (b *builder) collection(name string) (*domain.FileCollection, error) {
	if c, ok := b.collections[name]; ok {
		return c, nil
	}
	paths, ok := b.file.Collections[name]
	if !ok {
		return nil, zerr.With(zerr.New("unknown file collection"), "collection", name)
	}
	c := &domain.FileCollection{Files: make([]domain.File, 0, len(paths))}
	for _, p := range paths {
		c.Files = append(c.Files, b.resolve(p))
	}
	b.collections[name] = c
	return c, nil
}

func (b *builder) resolve(p string) domain.File {
	if filepath.IsAbs(p) {
		return domain.File(filepath.Clean(p))
	}
	return domain.File(filepath.Join(b.dir, p))
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// splitTaskPath splits ":sub:a:compile" into the project ":sub:a" and the name "compile".
func splitTaskPath(s string) (domain.ProjectPath, string, error) {
	i := strings.LastIndex(s, domain.PathSeparator)
	if i < 0 || i == len(s)-1 {
		return domain.ProjectPath{}, "", zerr.With(zerr.Wrap(domain.ErrInvalidTask, "task path"), "path", s)
	}
	projectPath := s[:i]
	if projectPath == "" {
		projectPath = domain.PathSeparator
	}
	project, err := domain.ParseProjectPath(projectPath)
	if err != nil {
		return domain.ProjectPath{}, "", err
	}
	return project, s[i+1:], nil
}
