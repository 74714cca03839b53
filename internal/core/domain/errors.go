package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task whose path already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTargetsSpecified is returned when a run is requested without task names.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrInvalidProjectPath is returned when a project path cannot be parsed.
	ErrInvalidProjectPath = zerr.New("invalid project path")

	// ErrProjectAlreadyExists is returned when a project is created twice.
	ErrProjectAlreadyExists = zerr.New("project already exists")

	// ErrParentProjectMissing is returned when a project is created before its parent.
	ErrParentProjectMissing = zerr.New("parent project does not exist")

	// ErrInvalidTask is returned by the task builder for incomplete task definitions.
	ErrInvalidTask = zerr.New("invalid task definition")

	// ErrDuplicateProperty is returned when a task declares the same property twice.
	ErrDuplicateProperty = zerr.New("duplicate property")

	// ErrUnknownTaskType is returned when a task type cannot be resolved.
	ErrUnknownTaskType = zerr.New("unknown task type")

	// ErrNotOnClassPath is returned when a task type's location is missing from the class path.
	ErrNotOnClassPath = zerr.New("task type is not on the class path")

	// ErrFeatureDisabled is raised when the snapshot engine is used while disabled.
	ErrFeatureDisabled = zerr.New("instant execution is disabled")

	// ErrInvalidState is returned when an engine pass is started twice.
	ErrInvalidState = zerr.New("invalid engine state")

	// ErrDanglingDependency is returned when a stored dependency does not resolve to a loaded task.
	ErrDanglingDependency = zerr.New("dependency does not resolve to a loaded task")

	// ErrIncompatibleEntry is returned when an entry was written by another format version.
	ErrIncompatibleEntry = zerr.New("incompatible cache entry")

	// ErrCorruptEntry is returned when an entry fails its integrity check.
	ErrCorruptEntry = zerr.New("corrupt cache entry")

	// ErrEntryNotFound is returned when opening an entry that does not exist.
	ErrEntryNotFound = zerr.New("cache entry not found")

	// ErrTooManyProblems is returned when a store reports more problems than allowed.
	ErrTooManyProblems = zerr.New("too many instant execution problems")

	// ErrStoreFailed marks a failed store in the application layer.
	ErrStoreFailed = zerr.New("failed to store instant execution state")
)
