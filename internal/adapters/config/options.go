package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/zerr"
)

// OptionsLoader resolves engine options from defaults, the options file in
// the build root and INSTANT_ environment variables, in increasing priority.
type OptionsLoader struct {
	engineVersion string
	filename      string
	envPrefix     string
}

var _ ports.OptionsLoader = (*OptionsLoader)(nil)

// NewOptionsLoader creates a loader for the given engine version.
func NewOptionsLoader(engineVersion string) *OptionsLoader {
	return &OptionsLoader{
		engineVersion: engineVersion,
		filename:      domain.ConfigFileName,
		envPrefix:     domain.EnvPrefix,
	}
}

// Load reads the options for the build rooted at rootDir. A missing options
// file is not an error.
func (l *OptionsLoader) Load(rootDir string) (domain.Options, error) {
	defaults := domain.DefaultOptions(l.engineVersion)
	target := toOptionsFile(defaults)

	k := koanf.New(".")
	path := filepath.Join(rootDir, l.filename)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Options{}, zerr.With(zerr.Wrap(err, "failed to load options file"), "path", path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.Options{}, zerr.With(zerr.Wrap(err, "failed to stat options file"), "path", path)
	}

	// INSTANT_MAX_PROBLEMS -> max_problems
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}
	if err := k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load options from environment")
	}

	if err := k.Unmarshal("", &target); err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to decode options")
	}

	opts := target.toDomain(l.engineVersion)
	if opts.MaxProblems < 0 {
		return domain.Options{}, zerr.With(zerr.New("max_problems must not be negative"), "max_problems", opts.MaxProblems)
	}
	return opts, nil
}

func toOptionsFile(o domain.Options) OptionsFile {
	return OptionsFile{
		Enabled:            o.Enabled,
		SkipReuse:          o.SkipReuse,
		Recreate:           o.Recreate,
		ReadOnly:           o.ReadOnly,
		ParallelStore:      o.ParallelStore,
		ParallelLoad:       o.ParallelLoad,
		DeduplicateStrings: o.DeduplicateStrings,
		ShareObjects:       o.ShareObjects,
		IntegrityCheck:     o.IntegrityCheck,
		Debug:              o.Debug,
		MaxProblems:        o.MaxProblems,
	}
}

func (f OptionsFile) toDomain(engineVersion string) domain.Options {
	return domain.Options{
		Enabled:            f.Enabled,
		SkipReuse:          f.SkipReuse,
		Recreate:           f.Recreate,
		ReadOnly:           f.ReadOnly,
		ParallelStore:      f.ParallelStore,
		ParallelLoad:       f.ParallelLoad,
		DeduplicateStrings: f.DeduplicateStrings,
		ShareObjects:       f.ShareObjects,
		IntegrityCheck:     f.IntegrityCheck,
		Debug:              f.Debug,
		MaxProblems:        f.MaxProblems,
		EngineVersion:      engineVersion,
	}
}
