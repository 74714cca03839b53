package domain

import "path/filepath"

const (
	// StateDirName is the directory under the build root holding cache entries.
	StateDirName = ".instant-execution-state"

	// EntryExtension is the file extension of a cache entry.
	EntryExtension = ".bin"

	// PendingSuffix marks an entry that is still being written.
	PendingSuffix = ".tmp"

	// ConfigFileName is the default engine options file.
	ConfigFileName = "instant.yaml"

	// BuildFileName is the default build definition file.
	BuildFileName = "build.yaml"

	// EnvPrefix is the prefix of environment variables overriding options.
	EnvPrefix = "INSTANT_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for cache entries (rw-r--r--).
	FilePerm = 0o644
)

// StateDir returns the directory holding all entries under rootDir.
func StateDir(rootDir string) string {
	return filepath.Join(rootDir, StateDirName)
}

// VersionDir returns the directory holding the entries written by one engine version.
func VersionDir(rootDir, engineVersion string) string {
	return filepath.Join(StateDir(rootDir), engineVersion)
}
