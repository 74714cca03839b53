package snapshot_test

import (
	"os"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/instant/internal/adapters/cas"
	"go.trai.ch/instant/internal/adapters/host"
	"go.trai.ch/instant/internal/adapters/telemetry"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/engine/snapshot"
)

const engineVersion = "0.0.0-test"

var (
	copyType    = domain.TaskType{ID: "org.example.Copy", Location: "/plugins/copy.jar"}
	compileType = domain.TaskType{ID: "org.example.Compile", Location: "/plugins/compile.jar"}
	taskTypes   = []domain.TaskType{copyType, compileType}
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
	errs  []error
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *recordingLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.infos)
}

func (l *recordingLogger) Warns() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.warns)
}

type fixture struct {
	root    string
	store   *cas.Store
	logger  *recordingLogger
	factory *snapshot.Factory
	opts    domain.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		root:   t.TempDir(),
		store:  cas.NewStore(),
		logger: &recordingLogger{},
		opts:   domain.DefaultOptions(engineVersion),
	}
	f.factory = snapshot.NewFactory(f.store, nil, f.logger, telemetry.NewNoOp())
	return f
}

// configured returns a host that has scheduled tasks, as configuration would.
func (f *fixture) configured(t *testing.T, requested []string, tasks ...*domain.Task) *host.Host {
	t.Helper()
	h := host.New(f.root, requested, taskTypes)
	require.NoError(t, h.CreateBuild("demo"))
	projects := make([]domain.ProjectPath, 0, len(tasks))
	for _, task := range tasks {
		projects = append(projects, task.Project)
	}
	for _, p := range snapshot.CloseAncestors(projects) {
		require.NoError(t, h.CreateProject(p))
	}
	require.NoError(t, h.ScheduleTasks(tasks))
	return h
}

// fresh returns an unconfigured host for a load.
func (f *fixture) fresh(requested []string) *host.Host {
	return host.New(f.root, requested, taskTypes)
}

func (f *fixture) entryRef(requested []string) domain.EntryRef {
	return domain.EntryRef{RootDir: f.root, EngineVersion: engineVersion, Key: snapshot.CacheKey(requested)}
}

func (f *fixture) entryFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(domain.VersionDir(f.root, engineVersion))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func mustTask(t *testing.T, b *domain.TaskBuilder) *domain.Task {
	t.Helper()
	task, err := b.Build()
	require.NoError(t, err)
	return task
}

func get(t *testing.T, src domain.ValueSource) any {
	t.Helper()
	v, err := src.Get()
	require.NoError(t, err)
	return v
}

type outputView struct {
	Name     string
	Type     domain.OutputFileType
	Optional bool
	Value    any
}

type inputView struct {
	Name     string
	Optional bool
	File     *domain.FileInput
	Value    any
}

type taskView struct {
	Path    string
	Type    domain.TypeID
	Deps    []string
	Outputs []outputView
	Inputs  []inputView
}

// view flattens tasks into comparable values with evaluated properties.
func view(t *testing.T, tasks []*domain.Task) []taskView {
	t.Helper()
	out := make([]taskView, len(tasks))
	for i, task := range tasks {
		v := taskView{Path: task.Path(), Type: task.Type, Deps: task.DependencyPaths()}
		for _, p := range task.Outputs {
			v.Outputs = append(v.Outputs, outputView{p.Name, p.Type, p.Optional, get(t, p.Value)})
		}
		for _, p := range task.Inputs {
			v.Inputs = append(v.Inputs, inputView{p.Name, p.Optional, p.File, get(t, p.Value)})
		}
		out[i] = v
	}
	return out
}
