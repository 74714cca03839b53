package domain

// DefaultMaxProblems is the number of problems tolerated before a store fails.
const DefaultMaxProblems = 512

// Options controls the snapshot engine. It is resolved once at startup.
type Options struct {
	// Enabled turns the engine on.
	Enabled bool
	// SkipReuse ignores existing entries for this invocation.
	SkipReuse bool
	// Recreate discards the existing entry and writes a new one.
	Recreate bool
	// ReadOnly reuses entries but never writes one on a miss.
	ReadOnly bool
	// ParallelStore encodes task records concurrently.
	ParallelStore bool
	// ParallelLoad decodes task records concurrently.
	ParallelLoad bool
	// DeduplicateStrings writes repeated strings of a task once.
	DeduplicateStrings bool
	// ShareObjects writes shared values of a task once.
	ShareObjects bool
	// IntegrityCheck appends and verifies a checksum trailer.
	IntegrityCheck bool
	// Debug logs every stored and loaded task.
	Debug bool
	// MaxProblems is the number of problems tolerated by a store.
	MaxProblems int
	// EngineVersion selects the entry directory; entries of other versions are never read.
	EngineVersion string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions(engineVersion string) Options {
	return Options{
		Enabled:            true,
		ParallelStore:      true,
		ParallelLoad:       true,
		DeduplicateStrings: true,
		ShareObjects:       true,
		IntegrityCheck:     true,
		MaxProblems:        DefaultMaxProblems,
		EngineVersion:      engineVersion,
	}
}
