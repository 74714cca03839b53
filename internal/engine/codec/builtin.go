package codec

import (
	"slices"
	"time"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builtins returns the bindings for the value types every build understands,
// in matching order.
func Builtins() []Binding {
	return []Binding{
		{
			Tag:   "nil",
			Match: func(v any) bool { return v == nil },
			Codec: nilCodec{},
		},
		Bind("string", (*Writer).WriteString, (*Reader).ReadString),
		Bind("bool", (*Writer).WriteBool, (*Reader).ReadBool),
		Bind("int",
			func(w *Writer, v int) error { return w.WriteInt(int64(v)) },
			func(r *Reader) (int, error) {
				n, err := r.ReadInt()
				return int(n), err
			}),
		Bind("int64", (*Writer).WriteInt, (*Reader).ReadInt),
		Bind("uint64", (*Writer).WriteUint, (*Reader).ReadUint),
		Bind("float64", (*Writer).WriteFloat, (*Reader).ReadFloat),
		Bind("duration",
			func(w *Writer, v time.Duration) error { return w.WriteInt(int64(v)) },
			func(r *Reader) (time.Duration, error) {
				n, err := r.ReadInt()
				return time.Duration(n), err
			}),
		Bind("file",
			func(w *Writer, v domain.File) error { return w.WriteString(string(v)) },
			func(r *Reader) (domain.File, error) {
				s, err := r.ReadString()
				return domain.File(s), err
			}),
		Bind("files", writeFiles, readFiles),
		{
			Tag: "file-collection",
			Match: func(v any) bool {
				c, ok := v.(*domain.FileCollection)
				return ok && c != nil
			},
			Codec: fileCollectionCodec{},
		},
		Bind("project-path",
			func(w *Writer, v domain.ProjectPath) error { return w.WriteString(v.String()) },
			func(r *Reader) (domain.ProjectPath, error) {
				s, err := r.ReadString()
				if err != nil {
					return domain.ProjectPath{}, err
				}
				return domain.ParseProjectPath(s)
			}),
		Bind("strings", (*Writer).WriteStrings, (*Reader).ReadStrings),
		Bind("list", writeList, readList),
		Bind("map", writeMap, readMap),
	}
}

var defaultRegistry = mustRegistry(Builtins()...)

// Default returns the registry of built-in bindings.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(bindings ...Binding) *Registry {
	r, err := NewRegistry(bindings...)
	if err != nil {
		panic(err)
	}
	return r
}

type nilCodec struct{}

func (nilCodec) Encode(*Writer, any) error { return nil }

func (nilCodec) Decode(*Reader) (any, error) { return nil, nil }

func writeFiles(w *Writer, files []domain.File) error {
	if files == nil {
		return w.WriteLen(-1)
	}
	if err := w.WriteLen(len(files)); err != nil {
		return err
	}
	for _, f := range files {
		if err := w.WriteString(string(f)); err != nil {
			return err
		}
	}
	return nil
}

func readFiles(r *Reader) ([]domain.File, error) {
	n, err := r.ReadLen()
	if err != nil || n < 0 {
		return nil, err
	}
	files := make([]domain.File, n)
	for i := range files {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		files[i] = domain.File(s)
	}
	return files, nil
}

// fileCollectionCodec writes each collection once per task; properties sharing
// a collection get the same pointer back on decode.
type fileCollectionCodec struct{}

func (fileCollectionCodec) Encode(w *Writer, v any) error {
	c, _ := v.(*domain.FileCollection)
	return w.WriteShared(c, func() error {
		return writeFiles(w, c.Files)
	})
}

func (fileCollectionCodec) Decode(r *Reader) (any, error) {
	return r.ReadShared(func() (any, error) {
		files, err := readFiles(r)
		if err != nil {
			return nil, err
		}
		return &domain.FileCollection{Files: files}, nil
	})
}

func writeList(w *Writer, list []any) error {
	if list == nil {
		return w.WriteLen(-1)
	}
	if err := w.WriteLen(len(list)); err != nil {
		return err
	}
	for i, v := range list {
		if err := w.WriteValue(v); err != nil {
			return zerr.With(err, "index", i)
		}
	}
	return nil
}

func readList(r *Reader) ([]any, error) {
	n, err := r.ReadLen()
	if err != nil || n < 0 {
		return nil, err
	}
	list := make([]any, n)
	for i := range list {
		if list[i], err = r.ReadValue(); err != nil {
			return nil, zerr.With(err, "index", i)
		}
	}
	return list, nil
}

// writeMap writes entries in key order so equal maps produce equal bytes.
func writeMap(w *Writer, m map[string]any) error {
	if m == nil {
		return w.WriteLen(-1)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	if err := w.WriteLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := w.WriteString(k); err != nil {
			return err
		}
		if err := w.WriteValue(m[k]); err != nil {
			return zerr.With(err, "key", k)
		}
	}
	return nil
}

func readMap(r *Reader) (map[string]any, error) {
	n, err := r.ReadLen()
	if err != nil || n < 0 {
		return nil, err
	}
	m := make(map[string]any, n)
	for range n {
		k, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if m[k], err = r.ReadValue(); err != nil {
			return nil, zerr.With(err, "key", k)
		}
	}
	return m, nil
}
