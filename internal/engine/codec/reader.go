package codec

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/zerr"
)

// Reader decodes what a Writer with the same registry and scope options wrote.
type Reader struct {
	dec       *msgpack.Decoder
	registry  *Registry
	scope     *Scope
	remaining func() int
}

// NewReader returns a Reader decoding from r with the given registry and scope.
// When r reports its unread length, as bytes.Reader and bytes.Buffer do,
// collection lengths are bounded by it.
func NewReader(r io.Reader, registry *Registry, scope *Scope) *Reader {
	reader := &Reader{
		dec:      msgpack.NewDecoder(r),
		registry: registry,
		scope:    scope,
	}
	if l, ok := r.(interface{ Len() int }); ok {
		reader.remaining = l.Len
	}
	return reader
}

// Scope returns the scope of the reader.
func (r *Reader) Scope() *Scope {
	return r.scope
}

// ReadString reads a string written by WriteString.
func (r *Reader) ReadString() (string, error) {
	if !r.scope.opts.DeduplicateStrings {
		return r.dec.DecodeString()
	}
	id, err := r.dec.DecodeUint64()
	if err != nil {
		return "", err
	}
	if id != 0 {
		s, ok := r.scope.lookupString(id)
		if !ok {
			return "", zerr.With(zerr.Wrap(ErrInvalidReference, "string"), "id", id)
		}
		return s, nil
	}
	s, err := r.dec.DecodeString()
	if err != nil {
		return "", err
	}
	r.scope.strings = append(r.scope.strings, s)
	return s, nil
}

// ReadBool reads a bool.
func (r *Reader) ReadBool() (bool, error) {
	return r.dec.DecodeBool()
}

// ReadInt reads a signed integer.
func (r *Reader) ReadInt() (int64, error) {
	return r.dec.DecodeInt64()
}

// ReadUint reads an unsigned integer.
func (r *Reader) ReadUint() (uint64, error) {
	return r.dec.DecodeUint64()
}

// ReadFloat reads a float.
func (r *Reader) ReadFloat() (float64, error) {
	return r.dec.DecodeFloat64()
}

// ReadBytes reads a binary blob.
func (r *Reader) ReadBytes() ([]byte, error) {
	return r.dec.DecodeBytes()
}

// ReadLen reads a collection length; -1 marks a nil collection. Every element
// takes at least one byte, so a length beyond the unread input is rejected.
func (r *Reader) ReadLen() (int, error) {
	n, err := r.dec.DecodeArrayLen()
	if err != nil {
		return 0, err
	}
	if r.remaining != nil && n > r.remaining() {
		return 0, zerr.With(zerr.Wrap(ErrInvalidLength, "collection"), "length", n)
	}
	return n, nil
}

// ReadStrings reads a string collection written by WriteStrings.
func (r *Reader) ReadStrings() ([]string, error) {
	n, err := r.ReadLen()
	if err != nil || n < 0 {
		return nil, err
	}
	ss := make([]string, n)
	for i := range ss {
		if ss[i], err = r.ReadString(); err != nil {
			return nil, err
		}
	}
	return ss, nil
}

// ReadValue reads a value through the registry.
func (r *Reader) ReadValue() (any, error) {
	return r.registry.Decode(r)
}

// ReadShared reads an object written by WriteShared. decode reads the object itself.
func (r *Reader) ReadShared(decode func() (any, error)) (any, error) {
	if !r.scope.opts.ShareObjects {
		return decode()
	}
	id, err := r.dec.DecodeUint64()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read shared object reference")
	}
	if id != 0 {
		v, ok := r.scope.lookupObject(id)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrInvalidReference, "object"), "id", id)
		}
		return v, nil
	}
	slot := r.scope.reserveObject()
	v, err := decode()
	if err != nil {
		return nil, err
	}
	r.scope.objects[slot] = v
	return v, nil
}
