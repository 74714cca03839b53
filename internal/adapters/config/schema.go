package config

// Buildfile is the structure of the build.yaml build definition.
type Buildfile struct {
	Root        string              `yaml:"root"`
	Projects    []string            `yaml:"projects"`
	Types       map[string]string   `yaml:"types"`
	Collections map[string][]string `yaml:"collections"`
	Tasks       []TaskDTO           `yaml:"tasks"`
}

// TaskDTO is a task definition. Path is the absolute task path, e.g. ":app:assemble".
type TaskDTO struct {
	Path      string      `yaml:"path"`
	Type      string      `yaml:"type"`
	DependsOn []string    `yaml:"dependsOn"`
	Outputs   []OutputDTO `yaml:"outputs"`
	Inputs    []InputDTO  `yaml:"inputs"`
}

// OutputDTO declares an output property. Value is a path or a list of paths.
type OutputDTO struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Value    any    `yaml:"value"`
}

// InputDTO declares an input property. An input with a file type is a file
// input; Collection refers to a shared entry of Buildfile.Collections.
type InputDTO struct {
	Name          string `yaml:"name"`
	File          string `yaml:"file"`
	Normalizer    string `yaml:"normalizer"`
	SkipWhenEmpty bool   `yaml:"skipWhenEmpty"`
	Optional      bool   `yaml:"optional"`
	Collection    string `yaml:"collection"`
	Value         any    `yaml:"value"`
}

// OptionsFile is the structure of the instant.yaml options file. Environment
// variables use the same keys upper-cased with the INSTANT_ prefix, e.g.
// INSTANT_MAX_PROBLEMS.
type OptionsFile struct {
	Enabled            bool `koanf:"enabled"`
	SkipReuse          bool `koanf:"skip_reuse"`
	Recreate           bool `koanf:"recreate"`
	ReadOnly           bool `koanf:"read_only"`
	ParallelStore      bool `koanf:"parallel_store"`
	ParallelLoad       bool `koanf:"parallel_load"`
	DeduplicateStrings bool `koanf:"deduplicate_strings"`
	ShareObjects       bool `koanf:"share_objects"`
	IntegrityCheck     bool `koanf:"integrity_check"`
	Debug              bool `koanf:"debug"`
	MaxProblems        int  `koanf:"max_problems"`
}
