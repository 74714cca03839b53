// Package snapshot stores a configured task graph as a cache entry and
// rebuilds the graph from that entry on a later invocation.
package snapshot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle state of an Engine.
type State int

// Engine states. Stored, Loaded and Failed are terminal.
const (
	Idle State = iota
	Storing
	Stored
	Loading
	Loaded
	Failed
)

var stateNames = [...]string{"idle", "storing", "stored", "loading", "loaded", "failed"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Engine runs exactly one store or load pass for one build invocation.
type Engine struct {
	opts      domain.Options
	host      ports.BuildHost
	store     ports.EntryStore
	registry  *codec.Registry
	logger    ports.Logger
	telemetry ports.Telemetry

	mu    sync.Mutex
	state State
}

// New creates an engine for one pass over host.
func New(
	opts domain.Options,
	host ports.BuildHost,
	store ports.EntryStore,
	registry *codec.Registry,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Engine {
	return &Engine{
		opts:      opts,
		host:      host,
		store:     store,
		registry:  registry,
		logger:    logger,
		telemetry: telemetry,
	}
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) begin(next State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Idle {
		return zerr.With(zerr.Wrap(domain.ErrInvalidState, "begin pass"), "state", e.state.String())
	}
	e.state = next
	return nil
}

func (e *Engine) end(err error, done State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = Failed
		return
	}
	e.state = done
}

// EntryRef returns the reference of the entry for the host's requested tasks.
func (e *Engine) EntryRef() domain.EntryRef {
	return domain.EntryRef{
		RootDir:       e.host.RootDir(),
		EngineVersion: e.opts.EngineVersion,
		Key:           CacheKey(e.host.RequestedTaskNames()),
	}
}

// CanExecuteInstantaneously reports whether the task graph can be loaded from
// an existing entry instead of running configuration.
func (e *Engine) CanExecuteInstantaneously(_ context.Context) (bool, error) {
	if !e.opts.Enabled {
		return false, nil
	}
	if e.opts.SkipReuse {
		e.logger.Info("Calculating task graph as skipping instant execution cache was requested")
		return false, nil
	}
	if e.opts.Recreate {
		e.logger.Info("Calculating task graph as recreating the instant execution cache was requested")
		return false, nil
	}
	exists, err := e.store.Exists(e.EntryRef())
	if err != nil {
		return false, zerr.Wrap(err, "failed to check for instant execution cache")
	}
	names := strings.Join(e.host.RequestedTaskNames(), ", ")
	if !exists {
		e.logger.Info("Calculating task graph as no instant execution cache is available for tasks: " + names)
		return false, nil
	}
	e.logger.Info("Reusing instant execution cache for tasks: " + names)
	return true, nil
}

// Store writes the host's scheduled task graph to the entry of the requested
// tasks. It does nothing when the engine is disabled or read-only. On failure
// no entry is left at the entry location.
func (e *Engine) Store(ctx context.Context) (err error) {
	if !e.opts.Enabled {
		return nil
	}
	if e.opts.ReadOnly {
		e.logger.Info("Instant execution cache is read-only, not storing the task graph")
		return nil
	}
	if err := e.begin(Storing); err != nil {
		return err
	}
	defer func() { e.end(err, Stored) }()

	ctx, vertex := e.telemetry.Record(ctx, "store instant execution state")
	defer func() { vertex.Complete(err) }()

	pending, err := e.store.Create(e.EntryRef())
	if err != nil {
		return zerr.Wrap(err, "failed to create instant execution cache entry")
	}
	defer func() {
		if err != nil {
			_ = pending.Abort()
		}
	}()

	bw := bufio.NewWriter(pending)
	if err := e.writeEntry(ctx, bw, vertex); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to flush instant execution cache entry")
	}
	return pending.Commit()
}

func (e *Engine) writeEntry(ctx context.Context, out io.Writer, vertex ports.Vertex) error {
	tasks := e.host.ScheduledTasks()
	h := header{
		version: FormatVersion,
		scope: codec.ScopeOptions{
			DeduplicateStrings: e.opts.DeduplicateStrings,
			ShareObjects:       e.opts.ShareObjects,
		},
		integrity: e.opts.IntegrityCheck,
	}

	w, err := newEntryWriter(out, e.registry, h)
	if err != nil {
		return err
	}
	if err := w.WriteString(e.host.RootProjectName()); err != nil {
		return zerr.Wrap(err, "failed to write root project name")
	}
	projects := CloseAncestors(RelevantProjects(tasks))
	if err := w.WriteStrings(projectStrings(projects)); err != nil {
		return zerr.Wrap(err, "failed to write project paths")
	}
	cp, err := e.classPathOf(tasks)
	if err != nil {
		return err
	}
	if err := w.WriteStrings(cp.Locations()); err != nil {
		return zerr.Wrap(err, "failed to write class path")
	}

	segments, err := e.encodeTasks(ctx, tasks)
	if err != nil {
		return err
	}
	for i, segment := range segments {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		if err := w.WriteBytes(segment); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write task record"), "task", tasks[i].Path())
		}
		e.debug(vertex, fmt.Sprintf("stored %s (%d bytes)", tasks[i].Path(), len(segment)))
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	return w.finish()
}

func (e *Engine) classPathOf(tasks []*domain.Task) (domain.ClassPath, error) {
	cp := domain.EmptyClassPath
	seen := make(map[domain.TypeID]struct{})
	for _, t := range tasks {
		if _, ok := seen[t.Type]; ok {
			continue
		}
		seen[t.Type] = struct{}{}
		typeCP, err := e.host.ClassPathOf(t.Type)
		if err != nil {
			return domain.EmptyClassPath, zerr.With(zerr.Wrap(err, "failed to resolve class path"), "type", string(t.Type))
		}
		cp = cp.Plus(typeCP)
	}
	return cp, nil
}

func (e *Engine) workers(parallel bool) int {
	if parallel {
		return runtime.NumCPU()
	}
	return 1
}

// encodeTasks encodes every task into its own segment, in task order.
func (e *Engine) encodeTasks(ctx context.Context, tasks []*domain.Task) ([][]byte, error) {
	rc := recordCodec{
		registry: e.registry,
		scope: codec.ScopeOptions{
			DeduplicateStrings: e.opts.DeduplicateStrings,
			ShareObjects:       e.opts.ShareObjects,
		},
	}
	probs := newProblems(e.opts.MaxProblems, e.logger)
	segments := make([][]byte, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers(e.opts.ParallelStore))
	for i, t := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			segment, err := rc.encode(t, t.DependsOn, probs)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "could not save state of task"), "task", t.Path())
			}
			segments[i] = segment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}

// Load rebuilds the task graph from the entry of the requested tasks, creates
// its projects through the host and schedules the wired tasks. Callers check
// CanExecuteInstantaneously first. Calling Load on a disabled engine is a
// programming error and panics.
func (e *Engine) Load(ctx context.Context) (tasks []*domain.Task, err error) {
	if !e.opts.Enabled {
		panic(zerr.Wrap(domain.ErrFeatureDisabled, "load called on a disabled engine"))
	}
	if err := e.begin(Loading); err != nil {
		return nil, err
	}
	defer func() { e.end(err, Loaded) }()

	ctx, vertex := e.telemetry.Record(ctx, "load instant execution state")
	defer func() {
		if err == nil {
			vertex.Cached()
		}
		vertex.Complete(err)
	}()

	data, err := e.readEntry()
	if err != nil {
		return nil, err
	}
	r, h, err := openEntry(data, e.registry, e.opts.IntegrityCheck)
	if err != nil {
		return nil, err
	}

	if err := e.readProjects(r); err != nil {
		return nil, err
	}

	locations, err := r.ReadStrings()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read class path")
	}
	loader, err := e.host.NewTypeLoader(domain.NewClassPath(locations...))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create type loader")
	}

	var segments [][]byte
	for {
		more, err := r.ReadBool()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read task sequence")
		}
		if !more {
			break
		}
		segment, err := r.ReadBytes()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read task record")
		}
		segments = append(segments, segment)
	}

	records, err := e.decodeTasks(ctx, segments, recordCodec{registry: e.registry, scope: h.scope}, loader)
	if err != nil {
		return nil, err
	}
	tasks, err = wire(records)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		e.debug(vertex, "loaded "+t.Path())
	}
	if err := e.host.ScheduleTasks(tasks); err != nil {
		return nil, zerr.Wrap(err, "failed to schedule loaded tasks")
	}
	return tasks, nil
}

func (e *Engine) readEntry() ([]byte, error) {
	rc, err := e.store.Open(e.EntryRef())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open instant execution cache entry")
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read instant execution cache entry")
	}
	return data, nil
}

// readProjects recreates the root project and the recorded project tree.
func (e *Engine) readProjects(r *codec.Reader) error {
	rootName, err := r.ReadString()
	if err != nil {
		return zerr.Wrap(err, "failed to read root project name")
	}
	if err := e.host.CreateBuild(rootName); err != nil {
		return zerr.Wrap(err, "failed to create build")
	}

	paths, err := r.ReadStrings()
	if err != nil {
		return zerr.Wrap(err, "failed to read project paths")
	}
	for _, s := range paths {
		path, err := domain.ParseProjectPath(s)
		if err != nil {
			return err
		}
		if err := e.host.CreateProject(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create project"), "project", s)
		}
	}

	if err := e.host.AutoApplyPlugins(); err != nil {
		return zerr.Wrap(err, "failed to apply plugins")
	}
	if err := e.host.RegisterProjects(); err != nil {
		return zerr.Wrap(err, "failed to register projects")
	}
	return nil
}

// decodeTasks decodes every segment; records keep the order of the entry.
func (e *Engine) decodeTasks(
	ctx context.Context,
	segments [][]byte,
	rc recordCodec,
	loader ports.TypeLoader,
) ([]record, error) {
	records := make([]record, len(segments))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers(e.opts.ParallelLoad))
	for i, segment := range segments {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := rc.decode(segment, loader)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "could not load state of task"), "index", i)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *Engine) debug(vertex ports.Vertex, msg string) {
	if !e.opts.Debug {
		return
	}
	e.logger.Info(msg)
	_, _ = fmt.Fprintln(vertex.Stdout(), msg)
}
