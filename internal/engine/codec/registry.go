// Package codec encodes the values of task properties. A Registry holds an
// ordered list of bindings; the first binding whose predicate accepts a value
// encodes it, prefixed with the binding's tag so the value can be decoded
// without knowing its type up front.
package codec

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Codec encodes and decodes one family of values. Codecs may recurse through
// Writer.WriteValue and Reader.ReadValue.
type Codec interface {
	Encode(w *Writer, v any) error
	Decode(r *Reader) (any, error)
}

// Binding pairs a codec with the predicate selecting the values it encodes and
// the tag identifying it in a stream.
type Binding struct {
	Tag   string
	Match func(v any) bool
	Codec Codec
}

// Registry is an immutable, ordered set of bindings. It is safe for concurrent use.
type Registry struct {
	bindings []Binding
	byTag    map[string]Codec
}

// NewRegistry returns a registry trying bindings in the given order.
func NewRegistry(bindings ...Binding) (*Registry, error) {
	r := &Registry{
		bindings: make([]Binding, 0, len(bindings)),
		byTag:    make(map[string]Codec, len(bindings)),
	}
	for _, b := range bindings {
		if b.Tag == "" || b.Match == nil || b.Codec == nil {
			return nil, zerr.With(zerr.New("incomplete codec binding"), "tag", b.Tag)
		}
		if _, exists := r.byTag[b.Tag]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateTag, "register"), "tag", b.Tag)
		}
		r.byTag[b.Tag] = b.Codec
		r.bindings = append(r.bindings, b)
	}
	return r, nil
}

// With returns a new registry in which bindings take priority over the
// bindings of r.
func (r *Registry) With(bindings ...Binding) (*Registry, error) {
	all := make([]Binding, 0, len(bindings)+len(r.bindings))
	all = append(all, bindings...)
	all = append(all, r.bindings...)
	return NewRegistry(all...)
}

// Tags returns the tags of the registry in priority order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.bindings))
	for i, b := range r.bindings {
		tags[i] = b.Tag
	}
	return tags
}

// Encode writes the tag of the first binding matching v followed by its payload.
func (r *Registry) Encode(w *Writer, v any) error {
	for _, b := range r.bindings {
		if !b.Match(v) {
			continue
		}
		if err := w.WriteString(b.Tag); err != nil {
			return zerr.Wrap(err, "failed to write codec tag")
		}
		if err := b.Codec.Encode(w, v); err != nil {
			return zerr.With(err, "tag", b.Tag)
		}
		return nil
	}
	return zerr.With(zerr.Wrap(ErrNoCodec, "encode"), "type", fmt.Sprintf("%T", v))
}

// Decode reads a tag and decodes the payload with the codec bound to it.
func (r *Registry) Decode(rd *Reader) (any, error) {
	tag, err := rd.ReadString()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read codec tag")
	}
	c, ok := r.byTag[tag]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnknownTag, "decode"), "tag", tag)
	}
	v, err := c.Decode(rd)
	if err != nil {
		return nil, zerr.With(err, "tag", tag)
	}
	return v, nil
}

// Func builds a Codec for values of type T from a pair of functions.
func Func[T any](encode func(w *Writer, v T) error, decode func(r *Reader) (T, error)) Codec {
	return funcCodec[T]{encode: encode, decode: decode}
}

type funcCodec[T any] struct {
	encode func(w *Writer, v T) error
	decode func(r *Reader) (T, error)
}

func (c funcCodec[T]) Encode(w *Writer, v any) error {
	t, ok := v.(T)
	if !ok {
		return zerr.With(zerr.Wrap(ErrNoCodec, "codec type mismatch"), "type", fmt.Sprintf("%T", v))
	}
	return c.encode(w, t)
}

func (c funcCodec[T]) Decode(r *Reader) (any, error) {
	return c.decode(r)
}

// OfType returns a predicate accepting values of dynamic type T.
func OfType[T any]() func(v any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

// Bind returns a binding for values of type T.
func Bind[T any](tag string, encode func(w *Writer, v T) error, decode func(r *Reader) (T, error)) Binding {
	return Binding{
		Tag:   tag,
		Match: OfType[T](),
		Codec: Func(encode, decode),
	}
}
