package codec_test

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/zerr"
)

var scopeVariants = map[string]codec.ScopeOptions{
	"plain":        {},
	"deduplicated": {DeduplicateStrings: true},
	"shared":       {ShareObjects: true},
	"all":          {DeduplicateStrings: true, ShareObjects: true},
}

func encode(t *testing.T, registry *codec.Registry, opts codec.ScopeOptions, values ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := codec.NewWriter(&buf, registry, codec.NewScope(opts))
	for _, v := range values {
		require.NoError(t, w.WriteValue(v))
	}
	return buf.Bytes()
}

func decode(t *testing.T, registry *codec.Registry, opts codec.ScopeOptions, data []byte, n int) []any {
	t.Helper()
	r := codec.NewReader(bytes.NewReader(data), registry, codec.NewScope(opts))
	out := make([]any, n)
	for i := range out {
		v, err := r.ReadValue()
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestRegistry_BuiltinValues(t *testing.T) {
	values := []any{
		nil,
		"hello",
		true,
		42,
		int64(-7),
		uint64(9),
		3.5,
		2 * time.Second,
		domain.File("/tmp/a"),
		[]domain.File{"/tmp/a", "/tmp/b"},
		[]domain.File(nil),
		domain.MustParseProjectPath(":sub:a"),
		[]string{"x", "y", "x"},
		[]string{},
		[]any{"nested", 1, []string{"z"}},
		map[string]any{"b": 2, "a": "one", "c": map[string]any{"d": false}},
	}

	for name, opts := range scopeVariants {
		t.Run(name, func(t *testing.T) {
			data := encode(t, codec.Default(), opts, values...)
			assert.Equal(t, values, decode(t, codec.Default(), opts, data, len(values)))
		})
	}
}

func TestRegistry_DeduplicateStrings(t *testing.T) {
	values := []any{"a-fairly-long-repeated-string", "a-fairly-long-repeated-string", "a-fairly-long-repeated-string"}

	plain := encode(t, codec.Default(), codec.ScopeOptions{}, values...)
	dedup := encode(t, codec.Default(), codec.ScopeOptions{DeduplicateStrings: true}, values...)

	assert.Less(t, len(dedup), len(plain))
}

func TestRegistry_SharedObjects(t *testing.T) {
	shared := &domain.FileCollection{Files: []domain.File{"/src/a.go", "/src/b.go"}}
	other := &domain.FileCollection{Files: []domain.File{"/src/a.go", "/src/b.go"}}
	opts := codec.ScopeOptions{ShareObjects: true}

	data := encode(t, codec.Default(), opts, shared, other, shared)
	got := decode(t, codec.Default(), opts, data, 3)

	first, ok := got[0].(*domain.FileCollection)
	require.True(t, ok)
	assert.Equal(t, shared.Files, first.Files)
	assert.Same(t, first, got[2])
	assert.NotSame(t, first, got[1])

	unshared := encode(t, codec.Default(), codec.ScopeOptions{}, shared, other, shared)
	assert.Less(t, len(data), len(unshared))
}

func TestRegistry_NoCodec(t *testing.T) {
	type unsupported struct{ A int }

	var buf bytes.Buffer
	w := codec.NewWriter(&buf, codec.Default(), codec.NewScope(codec.ScopeOptions{}))

	err := w.WriteValue(unsupported{A: 1})
	require.ErrorIs(t, err, codec.ErrNoCodec)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "codec_test.unsupported", zErr.Metadata()["type"])

	err = w.WriteValue([]any{"ok", unsupported{}})
	require.ErrorIs(t, err, codec.ErrNoCodec)

	err = w.WriteValue((*domain.FileCollection)(nil))
	require.ErrorIs(t, err, codec.ErrNoCodec)
}

func TestRegistry_UnknownTag(t *testing.T) {
	custom, err := codec.Default().With(codec.Bind("point",
		func(w *codec.Writer, p [2]int) error {
			if err := w.WriteInt(int64(p[0])); err != nil {
				return err
			}
			return w.WriteInt(int64(p[1]))
		},
		func(r *codec.Reader) ([2]int, error) {
			x, err := r.ReadInt()
			if err != nil {
				return [2]int{}, err
			}
			y, err := r.ReadInt()
			return [2]int{int(x), int(y)}, err
		}))
	require.NoError(t, err)

	data := encode(t, custom, codec.ScopeOptions{}, [2]int{1, 2})
	assert.Equal(t, []any{[2]int{1, 2}}, decode(t, custom, codec.ScopeOptions{}, data, 1))

	r := codec.NewReader(bytes.NewReader(data), codec.Default(), codec.NewScope(codec.ScopeOptions{}))
	_, err = r.ReadValue()
	require.ErrorIs(t, err, codec.ErrUnknownTag)
}

func TestRegistry_WithTakesPriority(t *testing.T) {
	upper, err := codec.Default().With(codec.Binding{
		Tag:   "shout",
		Match: func(v any) bool { s, ok := v.(string); return ok && s == "hi" },
		Codec: codec.Func(
			func(w *codec.Writer, s string) error { return w.WriteString("HI") },
			(*codec.Reader).ReadString),
	})
	require.NoError(t, err)
	assert.Equal(t, "shout", upper.Tags()[0])

	data := encode(t, upper, codec.ScopeOptions{}, "hi", "bye")
	assert.Equal(t, []any{"HI", "bye"}, decode(t, upper, codec.ScopeOptions{}, data, 2))
}

func TestNewRegistry_DuplicateTag(t *testing.T) {
	_, err := codec.Default().With(codec.Bind("string", (*codec.Writer).WriteString, (*codec.Reader).ReadString))
	require.ErrorIs(t, err, codec.ErrDuplicateTag)
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	registry := codec.Default()
	values := []any{"x", 1, []string{"a"}, map[string]any{"k": domain.File("/f")}}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			opts := codec.ScopeOptions{DeduplicateStrings: true, ShareObjects: true}
			var buf bytes.Buffer
			w := codec.NewWriter(&buf, registry, codec.NewScope(opts))
			for _, v := range values {
				assert.NoError(t, w.WriteValue(v))
			}
			r := codec.NewReader(&buf, registry, codec.NewScope(opts))
			for _, want := range values {
				got, err := r.ReadValue()
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestReader_LengthBeyondInput(t *testing.T) {
	for _, tag := range []string{"strings", "list", "map", "files"} {
		t.Run(tag, func(t *testing.T) {
			var buf bytes.Buffer
			w := codec.NewWriter(&buf, codec.Default(), codec.NewScope(codec.ScopeOptions{}))
			require.NoError(t, w.WriteString(tag))
			require.NoError(t, w.WriteLen(1<<30))
			require.NoError(t, w.WriteString("only"))

			r := codec.NewReader(bytes.NewReader(buf.Bytes()), codec.Default(), codec.NewScope(codec.ScopeOptions{}))
			_, err := r.ReadValue()
			require.ErrorIs(t, err, codec.ErrInvalidLength)
		})
	}
}

func TestReader_LengthWithinInput(t *testing.T) {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf, codec.Default(), codec.NewScope(codec.ScopeOptions{}))
	require.NoError(t, w.WriteLen(2))
	require.NoError(t, w.WriteString(""))
	require.NoError(t, w.WriteString(""))

	r := codec.NewReader(bytes.NewReader(buf.Bytes()), codec.Default(), codec.NewScope(codec.ScopeOptions{}))
	ss, err := r.ReadStrings()
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, ss)
}
