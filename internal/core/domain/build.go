package domain

// TaskType is a task implementation type and the class path location it is loaded from.
type TaskType struct {
	ID       TypeID
	Location string
}

// Build is a fully configured build: the project tree, the known task types and
// every declared task.
type Build struct {
	RootProjectName string
	Projects        []ProjectPath
	Types           []TaskType
	Tasks           *Graph
}

// EntryRef addresses one cache entry on disk.
type EntryRef struct {
	RootDir       string
	EngineVersion string
	Key           string
}
