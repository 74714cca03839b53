package ports

import "go.trai.ch/instant/internal/core/domain"

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// BuildHost is the build model the snapshot engine stores from and loads into.
type BuildHost interface {
	// RequestedTaskNames returns the task names requested for this invocation, in order.
	RequestedTaskNames() []string
	// RootDir returns the root directory of the build.
	RootDir() string
	// RootProjectName returns the name of the root project of the configured build.
	RootProjectName() string
	// ScheduledTasks returns the tasks scheduled by configuration.
	ScheduledTasks() []*domain.Task
	// ClassPathOf returns the class path needed to load the given task type.
	ClassPathOf(typ domain.TypeID) (domain.ClassPath, error)
	// NewTypeLoader returns a loader resolving task types from the given class path.
	NewTypeLoader(cp domain.ClassPath) (TypeLoader, error)
	// CreateBuild creates the build and its root project.
	CreateBuild(rootProjectName string) error
	// CreateProject creates the project at path. Its parent must exist.
	CreateProject(path domain.ProjectPath) error
	// AutoApplyPlugins applies the plugins every project receives.
	AutoApplyPlugins() error
	// RegisterProjects makes the created projects known to the build.
	RegisterProjects() error
	// ScheduleTasks schedules a fully wired task list.
	ScheduleTasks(tasks []*domain.Task) error
}

// TypeLoader resolves task types from one class path.
type TypeLoader interface {
	Load(id domain.TypeID) (domain.TaskType, error)
}

// Host is a BuildHost that can also run configuration.
type Host interface {
	BuildHost
	// Configure evaluates the build definition and schedules the requested tasks.
	Configure(build *domain.Build) error
	// ExecutionPlan returns the scheduled tasks in execution order.
	ExecutionPlan() []*domain.Task
}

// HostFactory creates a fresh host for one configuration or load attempt.
type HostFactory interface {
	// NewHost creates a host for the requested tasks that can load the given task types.
	NewHost(rootDir string, requested []string, types []domain.TaskType) Host
}
