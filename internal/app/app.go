// Package app implements the application layer for instant.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/snapshot"
	"go.trai.ch/instant/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	options ports.OptionsLoader
	builds  ports.BuildLoader
	hosts   ports.HostFactory
	engines *snapshot.Factory
	logger  ports.Logger
	out     io.Writer
	rootDir string
}

// New creates a new App instance.
func New(
	options ports.OptionsLoader,
	builds ports.BuildLoader,
	hosts ports.HostFactory,
	engines *snapshot.Factory,
	logger ports.Logger,
) *App {
	return &App{
		options: options,
		builds:  builds,
		hosts:   hosts,
		engines: engines,
		logger:  logger,
		out:     os.Stdout,
		rootDir: ".",
	}
}

// WithOutput sets the writer the execution plan is printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithRootDir sets the build root directory.
func (a *App) WithRootDir(dir string) *App {
	a.rootDir = dir
	return a
}

// RunOptions configures a single invocation.
type RunOptions struct {
	// NoReuse ignores an existing cache entry.
	NoReuse bool
	// Recreate rewrites the cache entry.
	Recreate bool
	// ReadOnly never writes a cache entry.
	ReadOnly bool
}

func (o RunOptions) apply(opts domain.Options) domain.Options {
	opts.SkipReuse = opts.SkipReuse || o.NoReuse
	opts.Recreate = opts.Recreate || o.Recreate
	opts.ReadOnly = opts.ReadOnly || o.ReadOnly
	return opts
}

// Run computes the task graph for the requested tasks, from the cache entry
// when one can be reused and by configuring the build otherwise, and prints
// the resulting execution plan.
func (a *App) Run(ctx context.Context, taskNames []string, runOpts RunOptions) error {
	if len(taskNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	root, err := filepath.Abs(a.rootDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve root directory")
	}

	opts, err := a.options.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load options")
	}
	opts = runOpts.apply(opts)

	build, err := a.builds.Load(filepath.Join(root, domain.BuildFileName))
	if err != nil {
		return zerr.Wrap(err, "failed to load build definition")
	}

	host := a.hosts.NewHost(root, taskNames, build.Types)
	engine := a.engines.New(opts, host)

	reuse, err := engine.CanExecuteInstantaneously(ctx)
	if err != nil {
		return err
	}
	if reuse {
		_, err := engine.Load(ctx)
		if err == nil {
			return a.printPlan(host)
		}
		if ctx.Err() != nil {
			return err
		}
		a.logger.Warn("Calculating task graph as the instant execution cache could not be loaded: " + err.Error())
		// The failed load may have created projects; start over on a fresh host.
		host = a.hosts.NewHost(root, taskNames, build.Types)
		engine = a.engines.New(opts, host)
	}

	if err := host.Configure(build); err != nil {
		return zerr.Wrap(err, "failed to configure build")
	}
	if err := engine.Store(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.logger.Warn(zerr.Wrap(domain.ErrStoreFailed, err.Error()).Error())
	}
	return a.printPlan(host)
}

func (a *App) printPlan(host ports.Host) error {
	out := output.New(a.out)
	plan := host.ExecutionPlan()
	if _, err := out.WriteString(out.String("Execution plan:").Bold().String() + "\n"); err != nil {
		return zerr.Wrap(err, "failed to print execution plan")
	}
	for _, t := range plan {
		if _, err := out.WriteString("  " + t.Path() + "\n"); err != nil {
			return zerr.Wrap(err, "failed to print execution plan")
		}
	}
	return nil
}

// Clean removes every cache entry of the build.
func (a *App) Clean(_ context.Context) error {
	root, err := filepath.Abs(a.rootDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve root directory")
	}
	if err := a.engines.Clean(root); err != nil {
		return zerr.Wrap(err, "failed to clean instant execution cache")
	}
	a.logger.Info("Removed instant execution cache in " + domain.StateDir(root))
	return nil
}
