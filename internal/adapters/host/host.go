// Package host provides the in-memory reference build host: it evaluates a
// build definition into a project tree and a scheduled task graph, and
// accepts the same tree and graph back from the snapshot engine.
package host

import (
	"slices"
	"strings"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/zerr"
)

// Host is an in-memory build model for one invocation.
type Host struct {
	rootDir   string
	requested []string
	types     map[domain.TypeID]domain.TaskType

	rootName   string
	created    bool
	projects   []domain.ProjectPath
	known      map[domain.ProjectPath]struct{}
	plugins    bool
	registered bool

	scheduled []*domain.Task
	plan      []*domain.Task
}

var _ ports.Host = (*Host)(nil)

// New creates a host for the requested task names that can load types.
func New(rootDir string, requested []string, types []domain.TaskType) *Host {
	h := &Host{
		rootDir:   rootDir,
		requested: slices.Clone(requested),
		types:     make(map[domain.TypeID]domain.TaskType, len(types)),
		known:     make(map[domain.ProjectPath]struct{}),
	}
	h.install(types)
	return h
}

func (h *Host) install(types []domain.TaskType) {
	for _, t := range types {
		h.types[t.ID] = t
	}
}

// RequestedTaskNames returns the requested task names in order.
func (h *Host) RequestedTaskNames() []string {
	return slices.Clone(h.requested)
}

// RootDir returns the root directory of the build.
func (h *Host) RootDir() string {
	return h.rootDir
}

// RootProjectName returns the name of the root project.
func (h *Host) RootProjectName() string {
	return h.rootName
}

// Projects returns the created non-root projects in creation order.
func (h *Host) Projects() []domain.ProjectPath {
	return slices.Clone(h.projects)
}

// PluginsApplied reports whether AutoApplyPlugins ran.
func (h *Host) PluginsApplied() bool {
	return h.plugins
}

// Registered reports whether RegisterProjects ran.
func (h *Host) Registered() bool {
	return h.registered
}

// ScheduledTasks returns the scheduled tasks in scheduling order.
func (h *Host) ScheduledTasks() []*domain.Task {
	return slices.Clone(h.scheduled)
}

// ExecutionPlan returns the scheduled tasks in dependency order.
func (h *Host) ExecutionPlan() []*domain.Task {
	return slices.Clone(h.plan)
}

// ClassPathOf returns the single location the type is loaded from.
func (h *Host) ClassPathOf(typ domain.TypeID) (domain.ClassPath, error) {
	t, ok := h.types[typ]
	if !ok {
		return domain.EmptyClassPath, zerr.With(zerr.Wrap(domain.ErrUnknownTaskType, "class path"), "type", string(typ))
	}
	return domain.NewClassPath(t.Location), nil
}

// NewTypeLoader returns a loader restricted to cp.
func (h *Host) NewTypeLoader(cp domain.ClassPath) (ports.TypeLoader, error) {
	return newTypeLoader(cp, h.types), nil
}

// CreateBuild creates the build and its root project.
func (h *Host) CreateBuild(rootProjectName string) error {
	if h.created {
		return zerr.With(zerr.Wrap(domain.ErrProjectAlreadyExists, "create build"), "project", rootProjectName)
	}
	h.rootName = rootProjectName
	h.created = true
	h.known[domain.RootPath] = struct{}{}
	return nil
}

// CreateProject creates the project at path below its existing parent.
func (h *Host) CreateProject(path domain.ProjectPath) error {
	if path.IsZero() || path.IsRoot() {
		return zerr.With(zerr.Wrap(domain.ErrInvalidProjectPath, "create project"), "path", path.String())
	}
	if _, exists := h.known[path]; exists {
		return zerr.With(zerr.Wrap(domain.ErrProjectAlreadyExists, "create project"), "path", path.String())
	}
	parent, _ := path.Parent()
	if _, ok := h.known[parent]; !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrParentProjectMissing, "create project"),
			"path", path.String()), "parent", parent.String())
	}
	h.known[path] = struct{}{}
	h.projects = append(h.projects, path)
	return nil
}

// AutoApplyPlugins marks the created projects as having their plugins applied.
func (h *Host) AutoApplyPlugins() error {
	h.plugins = true
	return nil
}

// RegisterProjects makes the created projects known to the build.
func (h *Host) RegisterProjects() error {
	if !h.created {
		return zerr.Wrap(domain.ErrParentProjectMissing, "register projects before creating the build")
	}
	h.registered = true
	return nil
}

// ScheduleTasks validates tasks as a closed, acyclic graph and schedules them.
func (h *Host) ScheduleTasks(tasks []*domain.Task) error {
	g := domain.NewGraph()
	for _, t := range tasks {
		if _, ok := h.known[t.Project]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidTask, "schedule"),
				"task", t.Path()), "project", t.Project.String())
		}
		if err := g.AddTask(t); err != nil {
			return err
		}
	}
	if err := g.Validate(); err != nil {
		return err
	}
	h.scheduled = slices.Clone(tasks)
	h.plan = slices.Collect(g.Walk())
	return nil
}

// Configure evaluates build: it creates the project tree, selects the requested
// tasks with their dependencies and schedules them.
func (h *Host) Configure(build *domain.Build) error {
	if len(h.requested) == 0 {
		return domain.ErrNoTargetsSpecified
	}
	h.install(build.Types)

	if err := h.CreateBuild(build.RootProjectName); err != nil {
		return err
	}
	projects := slices.Clone(build.Projects)
	slices.SortFunc(projects, domain.ProjectPath.Compare)
	for _, p := range projects {
		if p.IsRoot() {
			continue
		}
		if err := h.CreateProject(p); err != nil {
			return err
		}
	}
	if err := h.AutoApplyPlugins(); err != nil {
		return err
	}
	if err := h.RegisterProjects(); err != nil {
		return err
	}

	if err := build.Tasks.Validate(); err != nil {
		return zerr.Wrap(err, "invalid task graph")
	}
	selected, err := h.selectTasks(build.Tasks)
	if err != nil {
		return err
	}
	for _, t := range selected {
		if _, ok := h.types[t.Type]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownTaskType, "configure"),
				"task", t.Path()), "type", string(t.Type))
		}
	}
	return h.ScheduleTasks(selected)
}

// selectTasks returns the requested tasks and everything they depend on, in
// execution order.
func (h *Host) selectTasks(g *domain.Graph) ([]*domain.Task, error) {
	wanted := make(map[string]struct{})
	var mark func(t *domain.Task)
	mark = func(t *domain.Task) {
		if _, ok := wanted[t.Path()]; ok {
			return
		}
		wanted[t.Path()] = struct{}{}
		for _, dep := range t.DependsOn {
			mark(dep)
		}
	}

	for _, name := range h.requested {
		matches := match(g, name)
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "select"), "task", name)
		}
		for _, t := range matches {
			mark(t)
		}
	}

	selected := make([]*domain.Task, 0, len(wanted))
	for t := range g.Walk() {
		if _, ok := wanted[t.Path()]; ok {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

// match resolves a requested name: an absolute task path selects one task, a
// bare name selects the task of that name in every project.
func match(g *domain.Graph, name string) []*domain.Task {
	if strings.HasPrefix(name, domain.PathSeparator) {
		if t, ok := g.Task(name); ok {
			return []*domain.Task{t}
		}
		return nil
	}
	var out []*domain.Task
	for t := range g.Walk() {
		if t.Name.String() == name {
			out = append(out, t)
		}
	}
	return out
}
