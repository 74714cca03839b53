package codec

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/zerr"
)

// Writer encodes primitives and registry values to a stream.
type Writer struct {
	enc      *msgpack.Encoder
	registry *Registry
	scope    *Scope
}

// NewWriter returns a Writer encoding to w with the given registry and scope.
func NewWriter(w io.Writer, registry *Registry, scope *Scope) *Writer {
	return &Writer{
		enc:      msgpack.NewEncoder(w),
		registry: registry,
		scope:    scope,
	}
}

// Scope returns the scope of the writer.
func (w *Writer) Scope() *Scope {
	return w.scope
}

// WriteString writes s, once per scope when string deduplication is on.
func (w *Writer) WriteString(s string) error {
	if !w.scope.opts.DeduplicateStrings {
		return w.enc.EncodeString(s)
	}
	id := w.scope.internString(s)
	if err := w.enc.EncodeUint(id); err != nil {
		return err
	}
	if id != 0 {
		return nil
	}
	return w.enc.EncodeString(s)
}

// WriteBool writes b.
func (w *Writer) WriteBool(b bool) error {
	return w.enc.EncodeBool(b)
}

// WriteInt writes n.
func (w *Writer) WriteInt(n int64) error {
	return w.enc.EncodeInt(n)
}

// WriteUint writes n.
func (w *Writer) WriteUint(n uint64) error {
	return w.enc.EncodeUint(n)
}

// WriteFloat writes f.
func (w *Writer) WriteFloat(f float64) error {
	return w.enc.EncodeFloat64(f)
}

// WriteBytes writes b as a binary blob.
func (w *Writer) WriteBytes(b []byte) error {
	return w.enc.EncodeBytes(b)
}

// WriteLen writes a collection length. A negative length marks a nil collection.
func (w *Writer) WriteLen(n int) error {
	if n < 0 {
		return w.enc.EncodeNil()
	}
	return w.enc.EncodeArrayLen(n)
}

// WriteStrings writes a string collection, preserving nil.
func (w *Writer) WriteStrings(ss []string) error {
	if ss == nil {
		return w.WriteLen(-1)
	}
	if err := w.WriteLen(len(ss)); err != nil {
		return err
	}
	for _, s := range ss {
		if err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteValue writes v through the registry.
func (w *Writer) WriteValue(v any) error {
	return w.registry.Encode(w, v)
}

// WriteShared writes the object identified by key once per scope; later
// occurrences become back-references. encode writes the object itself.
func (w *Writer) WriteShared(key any, encode func() error) error {
	if !w.scope.opts.ShareObjects {
		return encode()
	}
	id := w.scope.shareObject(key)
	if err := w.enc.EncodeUint(id); err != nil {
		return zerr.Wrap(err, "failed to write shared object reference")
	}
	if id != 0 {
		return nil
	}
	return encode()
}
