package snapshot_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/instant/internal/adapters/host"
	"go.trai.ch/instant/internal/adapters/telemetry"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/instant/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

func abTasks(t *testing.T) (a, b *domain.Task) {
	t.Helper()
	a = mustTask(t, domain.NewTask(domain.RootPath, "A", copyType.ID).
		Output("out", domain.OutputDirectory, domain.Value(domain.File("/tmp/a"))))
	b = mustTask(t, domain.NewTask(domain.RootPath, "B", copyType.ID).
		FileInput("in", domain.InputFile, domain.Value(domain.File("/tmp/a/f"))).
		DependsOn(a))
	return a, b
}

func TestEngine_StoreLoad_TwoTasks(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	a, b := abTasks(t)

	store := f.factory.New(f.opts, f.configured(t, requested, a, b))
	require.NoError(t, store.Store(context.Background()))
	assert.Equal(t, snapshot.Stored, store.State())

	h := f.fresh(requested)
	load := f.factory.New(f.opts, h)
	ok, err := load.CanExecuteInstantaneously(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	tasks, err := load.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snapshot.Loaded, load.State())
	require.Len(t, tasks, 2)

	loadedA, loadedB := tasks[0], tasks[1]
	assert.Equal(t, ":A", loadedA.Path())
	assert.Equal(t, ":B", loadedB.Path())
	// Decoded names are interned to the same handles as the configured ones.
	assert.True(t, loadedA.Name == a.Name)
	assert.True(t, loadedB.Name == b.Name)
	require.Len(t, loadedB.DependsOn, 1)
	assert.Same(t, loadedA, loadedB.DependsOn[0])

	out, ok := loadedA.Output("out")
	require.True(t, ok)
	assert.Equal(t, domain.OutputDirectory, out.Type)
	assert.Equal(t, domain.File("/tmp/a"), get(t, out.Value))

	in, ok := loadedB.Input("in")
	require.True(t, ok)
	require.True(t, in.IsFile())
	assert.Equal(t, domain.InputFile, in.File.Type)
	assert.Equal(t, domain.File("/tmp/a/f"), get(t, in.Value))

	assert.Equal(t, "demo", h.RootProjectName())
	assert.Equal(t, []string{":A", ":B"}, pathsOf(h.ExecutionPlan()))
}

func pathsOf(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Path()
	}
	return out
}

// richTasks covers every builtin value type, both property sections and
// tasks in nested projects.
func richTasks(t *testing.T) []*domain.Task {
	t.Helper()
	shared := &domain.FileCollection{Files: []domain.File{"/src/a.go", "/src/b.go"}}

	compile := mustTask(t, domain.NewTask(domain.MustParseProjectPath(":lib:core"), "compile", compileType.ID).
		Output("classes", domain.OutputDirectory, domain.Value(domain.File("/build/classes"))).
		Output("reports", domain.OutputFiles, domain.Value([]domain.File{"/build/r1", "/build/r2"}), domain.Optional()).
		FileInput("sources", domain.InputFiles, domain.Value(shared), domain.WithNormalizer(domain.RelativePathNormalizer), domain.SkipWhenEmpty()).
		FileInput("classpath", domain.InputFiles, domain.Value(shared), domain.WithNormalizer(domain.ClasspathNormalizer)).
		Input("release", domain.Value(17)).
		Input("debug", domain.Value(true)).
		Input("args", domain.Value([]string{"-Xlint", "-Werror"})))

	test := mustTask(t, domain.NewTask(domain.MustParseProjectPath(":lib:core"), "test", copyType.ID).
		Input("timeout", domain.Value(int64(90))).
		Input("ratio", domain.Value(0.25)).
		Input("seed", domain.Value(uint64(42))).
		Input("env", domain.Value(map[string]any{"CI": "true", "SHARD": 3})).
		Input("tags", domain.Value([]any{"fast", int64(1), nil})).
		Input("owner", domain.Value(domain.MustParseProjectPath(":lib"))).
		DependsOn(compile))

	assemble := mustTask(t, domain.NewTask(domain.RootPath, "assemble", copyType.ID).
		Output("archive", domain.OutputFile, domain.Value(domain.File("/build/app.zip"))).
		DependsOn(compile, test))

	return []*domain.Task{compile, test, assemble}
}

func TestEngine_RoundTrip_Options(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*domain.Options)
	}{
		{name: "defaults", adjust: func(*domain.Options) {}},
		{name: "sequential", adjust: func(o *domain.Options) {
			o.ParallelStore = false
			o.ParallelLoad = false
		}},
		{name: "no deduplication", adjust: func(o *domain.Options) { o.DeduplicateStrings = false }},
		{name: "no sharing", adjust: func(o *domain.Options) { o.ShareObjects = false }},
		{name: "no integrity check", adjust: func(o *domain.Options) { o.IntegrityCheck = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.adjust(&f.opts)
			requested := []string{"assemble"}
			tasks := richTasks(t)

			require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, tasks...)).Store(context.Background()))

			h := f.fresh(requested)
			loaded, err := f.factory.New(f.opts, h).Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, view(t, tasks), view(t, loaded))
			assert.Equal(t, []domain.ProjectPath{
				domain.MustParseProjectPath(":lib"),
				domain.MustParseProjectPath(":lib:core"),
			}, h.Projects())
			assert.True(t, h.PluginsApplied())
			assert.True(t, h.Registered())

			sources, _ := loaded[0].Input("sources")
			classpath, _ := loaded[0].Input("classpath")
			if f.opts.ShareObjects {
				assert.Same(t, get(t, sources.Value), get(t, classpath.Value))
			} else {
				assert.NotSame(t, get(t, sources.Value), get(t, classpath.Value))
			}
		})
	}
}

func TestEngine_Store_Deterministic(t *testing.T) {
	read := func(parallel bool) []byte {
		f := newFixture(t)
		f.opts.ParallelStore = parallel
		requested := []string{"assemble"}
		require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, richTasks(t)...)).Store(context.Background()))
		data, err := os.ReadFile(f.store.Location(f.entryRef(requested)))
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, read(false), read(true))
}

func TestEngine_Load_ReconstructsAncestors(t *testing.T) {
	f := newFixture(t)
	requested := []string{"build"}
	a := mustTask(t, domain.NewTask(domain.MustParseProjectPath(":sub:a"), "build", copyType.ID))
	b := mustTask(t, domain.NewTask(domain.MustParseProjectPath(":sub:b"), "build", copyType.ID))

	require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, a, b)).Store(context.Background()))

	h := f.fresh(requested)
	_, err := f.factory.New(f.opts, h).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ProjectPath{
		domain.MustParseProjectPath(":sub"),
		domain.MustParseProjectPath(":sub:a"),
		domain.MustParseProjectPath(":sub:b"),
	}, h.Projects())
}

type unsupported struct{ n int }

func TestEngine_Store_UnresolvableCodec(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	a, _ := abTasks(t)
	bad := mustTask(t, domain.NewTask(domain.RootPath, "B", copyType.ID).
		Input("weird", domain.Value(unsupported{n: 1})).
		DependsOn(a))

	engine := f.factory.New(f.opts, f.configured(t, requested, a, bad))
	err := engine.Store(context.Background())
	require.ErrorIs(t, err, codec.ErrNoCodec)
	assert.Contains(t, err.Error(), "could not save state of task")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, ":B", zErr.Metadata()["task"])

	assert.Equal(t, snapshot.Failed, engine.State())
	assert.Empty(t, f.entryFiles(t), "no entry or pending file may be left behind")

	ok, err := f.factory.New(f.opts, f.fresh(requested)).CanExecuteInstantaneously(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_Store_FailedRecreateDiscardsPreviousEntry(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	storeAB(t, f, requested)
	require.Len(t, f.entryFiles(t), 1)

	a, _ := abTasks(t)
	bad := mustTask(t, domain.NewTask(domain.RootPath, "B", copyType.ID).
		Input("weird", domain.Value(unsupported{n: 2})).
		DependsOn(a))

	opts := f.opts
	opts.Recreate = true
	err := f.factory.New(opts, f.configured(t, requested, a, bad)).Store(context.Background())
	require.ErrorIs(t, err, codec.ErrNoCodec)
	assert.Empty(t, f.entryFiles(t), "the previous entry must not survive a failed store")

	ok, err := f.factory.New(f.opts, f.fresh(requested)).CanExecuteInstantaneously(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_EmptyPropertySections(t *testing.T) {
	f := newFixture(t)
	requested := []string{"bare", "other"}
	bare := mustTask(t, domain.NewTask(domain.RootPath, "bare", copyType.ID))
	other := mustTask(t, domain.NewTask(domain.RootPath, "other", copyType.ID).
		Input("only", domain.Value("input")))

	require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, bare, other)).Store(context.Background()))

	loaded, err := f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Empty(t, loaded[0].Outputs)
	assert.Empty(t, loaded[0].Inputs)
	assert.Empty(t, loaded[1].Outputs)
	require.Len(t, loaded[1].Inputs, 1)
	assert.Equal(t, "input", get(t, loaded[1].Inputs[0].Value))
}

func TestEngine_AbsentValuesAreOmitted(t *testing.T) {
	f := newFixture(t)
	requested := []string{"task"}
	task := mustTask(t, domain.NewTask(domain.RootPath, "task", copyType.ID).
		Output("maybe", domain.OutputFile, domain.Absent(), domain.Optional()).
		Output("kept", domain.OutputFile, domain.Value(domain.File("/out"))).
		Input("required", domain.Absent()).
		Input("unset", nil, domain.Optional()).
		Input("empty", domain.Value([]string(nil))))

	require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, task)).Store(context.Background()))
	assert.Equal(t, []string{"task :task: required property 'required' has no value and is not stored"}, f.logger.Warns())

	loaded, err := f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	_, ok := loaded[0].Output("maybe")
	assert.False(t, ok)
	_, ok = loaded[0].Input("required")
	assert.False(t, ok)
	_, ok = loaded[0].Input("unset")
	assert.False(t, ok)

	empty, ok := loaded[0].Input("empty")
	require.True(t, ok, "a typed nil slice is a value")
	assert.Equal(t, []string(nil), get(t, empty.Value))
}

func TestEngine_Store_TooManyProblems(t *testing.T) {
	f := newFixture(t)
	f.opts.MaxProblems = 1
	requested := []string{"task"}
	task := mustTask(t, domain.NewTask(domain.RootPath, "task", copyType.ID).
		Input("first", domain.Absent()).
		Input("second", domain.Absent()))

	err := f.factory.New(f.opts, f.configured(t, requested, task)).Store(context.Background())
	require.ErrorIs(t, err, domain.ErrTooManyProblems)
	assert.Len(t, f.logger.Warns(), 2)
	assert.Empty(t, f.entryFiles(t))
}

func TestEngine_Store_ValueError(t *testing.T) {
	f := newFixture(t)
	requested := []string{"task"}
	boom := errors.New("provider failed")
	task := mustTask(t, domain.NewTask(domain.RootPath, "task", copyType.ID).
		Input("lazy", domain.ValueFunc(func() (any, error) { return nil, boom })))

	err := f.factory.New(f.opts, f.configured(t, requested, task)).Store(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, f.entryFiles(t))
}

func TestEngine_CanExecuteInstantaneously(t *testing.T) {
	requested := []string{"A", "B"}

	tests := []struct {
		name    string
		adjust  func(*domain.Options)
		stored  bool
		want    bool
		message string
	}{
		{
			name:   "disabled",
			adjust: func(o *domain.Options) { o.Enabled = false },
			stored: true,
		},
		{
			name:    "skip reuse",
			adjust:  func(o *domain.Options) { o.SkipReuse = true },
			stored:  true,
			message: "Calculating task graph as skipping instant execution cache was requested",
		},
		{
			name:    "recreate",
			adjust:  func(o *domain.Options) { o.Recreate = true },
			stored:  true,
			message: "Calculating task graph as recreating the instant execution cache was requested",
		},
		{
			name:    "no entry",
			adjust:  func(*domain.Options) {},
			message: "Calculating task graph as no instant execution cache is available for tasks: A, B",
		},
		{
			name:    "entry available",
			adjust:  func(*domain.Options) {},
			stored:  true,
			want:    true,
			message: "Reusing instant execution cache for tasks: A, B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.stored {
				a, b := abTasks(t)
				require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, a, b)).Store(context.Background()))
			}
			f.logger = &recordingLogger{}
			opts := f.opts
			tt.adjust(&opts)
			factory := snapshot.NewFactory(f.store, nil, f.logger, telemetry.NewNoOp())

			ok, err := factory.New(opts, f.fresh(requested)).CanExecuteInstantaneously(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			if tt.message == "" {
				assert.Empty(t, f.logger.Infos())
			} else {
				assert.Equal(t, []string{tt.message}, f.logger.Infos())
			}
		})
	}
}

func TestEngine_CacheKeyDependsOnRequestedTasks(t *testing.T) {
	f := newFixture(t)
	a, b := abTasks(t)
	require.NoError(t, f.factory.New(f.opts, f.configured(t, []string{"B"}, a, b)).Store(context.Background()))

	ok, err := f.factory.New(f.opts, f.fresh([]string{"A", "B"})).CanExecuteInstantaneously(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_Store_Disabled(t *testing.T) {
	f := newFixture(t)
	f.opts.Enabled = false
	a, b := abTasks(t)

	engine := f.factory.New(f.opts, f.configured(t, []string{"B"}, a, b))
	require.NoError(t, engine.Store(context.Background()))
	assert.Equal(t, snapshot.Idle, engine.State())
	assert.Empty(t, f.entryFiles(t))
}

func TestEngine_Store_ReadOnly(t *testing.T) {
	f := newFixture(t)
	f.opts.ReadOnly = true
	a, b := abTasks(t)

	require.NoError(t, f.factory.New(f.opts, f.configured(t, []string{"B"}, a, b)).Store(context.Background()))
	assert.Empty(t, f.entryFiles(t))
	assert.Contains(t, f.logger.Infos(), "Instant execution cache is read-only, not storing the task graph")
}

func TestEngine_Load_Disabled(t *testing.T) {
	f := newFixture(t)
	f.opts.Enabled = false

	engine := f.factory.New(f.opts, f.fresh([]string{"B"}))
	assert.Panics(t, func() {
		_, _ = engine.Load(context.Background())
	})
}

func TestEngine_SecondPassIsRejected(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	a, b := abTasks(t)

	engine := f.factory.New(f.opts, f.configured(t, requested, a, b))
	require.NoError(t, engine.Store(context.Background()))

	assert.ErrorIs(t, engine.Store(context.Background()), domain.ErrInvalidState)
	_, err := engine.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, snapshot.Stored, engine.State())
}

func TestEngine_Load_Debug(t *testing.T) {
	f := newFixture(t)
	f.opts.Debug = true
	requested := []string{"B"}
	a, b := abTasks(t)

	require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, a, b)).Store(context.Background()))
	_, err := f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
	require.NoError(t, err)

	var stored, loaded int
	for _, msg := range f.logger.Infos() {
		switch {
		case strings.HasPrefix(msg, "stored :"):
			stored++
		case strings.HasPrefix(msg, "loaded :"):
			loaded++
		}
	}
	assert.Equal(t, 2, stored)
	assert.Equal(t, 2, loaded)
}

// storeAB writes the two-task entry and returns its location.
func storeAB(t *testing.T, f *fixture, requested []string) string {
	t.Helper()
	a, b := abTasks(t)
	require.NoError(t, f.factory.New(f.opts, f.configured(t, requested, a, b)).Store(context.Background()))
	return f.store.Location(f.entryRef(requested))
}

func TestEngine_Load_CorruptEntry(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	location := storeAB(t, f, requested)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	data[len(data)/2] ^= 0xff
	require.NoError(t, os.WriteFile(location, data, 0o600))

	engine := f.factory.New(f.opts, f.fresh(requested))
	_, err = engine.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrCorruptEntry)
	assert.Equal(t, snapshot.Failed, engine.State())
}

func TestEngine_Load_IntegrityFollowsOptions(t *testing.T) {
	t.Run("entry without checksum", func(t *testing.T) {
		f := newFixture(t)
		requested := []string{"B"}
		f.opts.IntegrityCheck = false
		storeAB(t, f, requested)

		f.opts.IntegrityCheck = true
		_, err := f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
		require.ErrorIs(t, err, domain.ErrCorruptEntry)
	})

	t.Run("checksum flag cleared in header", func(t *testing.T) {
		f := newFixture(t)
		requested := []string{"B"}
		location := storeAB(t, f, requested)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		// magic, version, dedup and share precede the integrity flag.
		flag := len("INSTEXEC") + 3
		require.Equal(t, byte(0xc3), data[flag])
		data[flag] = 0xc2
		require.NoError(t, os.WriteFile(location, data, 0o600))

		_, err = f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
		require.ErrorIs(t, err, domain.ErrCorruptEntry)
	})

	t.Run("checksum verified when options do not ask", func(t *testing.T) {
		f := newFixture(t)
		requested := []string{"B"}
		location := storeAB(t, f, requested)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		data[len(data)-1] ^= 0xff
		require.NoError(t, os.WriteFile(location, data, 0o600))

		f.opts.IntegrityCheck = false
		_, err = f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
		require.ErrorIs(t, err, domain.ErrCorruptEntry)
	})
}

func TestEngine_Load_IncompatibleEntry(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		f := newFixture(t)
		requested := []string{"B"}
		location := storeAB(t, f, requested)
		require.NoError(t, os.WriteFile(location, []byte("not an entry"), 0o600))

		_, err := f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrIncompatibleEntry)
	})

	t.Run("format version", func(t *testing.T) {
		f := newFixture(t)
		requested := []string{"B"}
		location := storeAB(t, f, requested)
		version, err := msgpack.Marshal(uint64(snapshot.FormatVersion + 1))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(location, append([]byte("INSTEXEC"), version...), 0o600))

		_, err = f.factory.New(f.opts, f.fresh(requested)).Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrIncompatibleEntry)
	})
}

func TestEngine_Load_UnknownType(t *testing.T) {
	f := newFixture(t)
	requested := []string{"B"}
	storeAB(t, f, requested)

	h := host.New(f.root, requested, nil)
	_, err := f.factory.New(f.opts, h).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownTaskType)
	assert.Contains(t, err.Error(), "failed to load task type")
	assert.Empty(t, h.ScheduledTasks())
}

func TestEngine_Load_MissingEntry(t *testing.T) {
	f := newFixture(t)

	_, err := f.factory.New(f.opts, f.fresh([]string{"B"})).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEngine_Store_Cancelled(t *testing.T) {
	f := newFixture(t)
	requested := []string{"assemble"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.factory.New(f.opts, f.configured(t, requested, richTasks(t)...)).Store(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.entryFiles(t))
}

func TestWire(t *testing.T) {
	a := mustTask(t, domain.NewTask(domain.RootPath, "A", copyType.ID))
	b := mustTask(t, domain.NewTask(domain.RootPath, "B", copyType.ID))

	t.Run("resolves every dependency", func(t *testing.T) {
		tasks, err := snapshot.Wire([]*domain.Task{a, b}, [][]string{nil, {":A"}})
		require.NoError(t, err)
		assert.Same(t, a, tasks[1].DependsOn[0])
	})

	t.Run("dangling dependency", func(t *testing.T) {
		c := mustTask(t, domain.NewTask(domain.RootPath, "C", copyType.ID))
		_, err := snapshot.Wire([]*domain.Task{c}, [][]string{{":gone"}})
		require.ErrorIs(t, err, domain.ErrDanglingDependency)

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, ":gone", zErr.Metadata()["dependency"])
		assert.Equal(t, ":C", zErr.Metadata()["task"])
	})

	t.Run("duplicate task", func(t *testing.T) {
		d1 := mustTask(t, domain.NewTask(domain.RootPath, "D", copyType.ID))
		d2 := mustTask(t, domain.NewTask(domain.RootPath, "D", copyType.ID))
		_, err := snapshot.Wire([]*domain.Task{d1, d2}, [][]string{nil, nil})
		assert.ErrorIs(t, err, domain.ErrCorruptEntry)
	})
}
