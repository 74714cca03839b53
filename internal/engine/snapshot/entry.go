package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/zerr"
)

// FormatVersion is the version of the entry layout. Entries of other versions
// are rejected.
const FormatVersion = 1

var magic = []byte("INSTEXEC")

const trailerSize = 8

// header describes how the rest of an entry is encoded.
type header struct {
	version   uint64
	scope     codec.ScopeOptions
	integrity bool
}

func writeHeader(w *codec.Writer, h header) error {
	if err := w.WriteUint(h.version); err != nil {
		return err
	}
	if err := w.WriteBool(h.scope.DeduplicateStrings); err != nil {
		return err
	}
	if err := w.WriteBool(h.scope.ShareObjects); err != nil {
		return err
	}
	return w.WriteBool(h.integrity)
}

func readHeader(r *codec.Reader) (header, error) {
	var h header
	var err error
	if h.version, err = r.ReadUint(); err != nil {
		return header{}, err
	}
	if h.version != FormatVersion {
		return header{}, zerr.With(zerr.Wrap(domain.ErrIncompatibleEntry, "format version"), "version", h.version)
	}
	if h.scope.DeduplicateStrings, err = r.ReadBool(); err != nil {
		return header{}, err
	}
	if h.scope.ShareObjects, err = r.ReadBool(); err != nil {
		return header{}, err
	}
	if h.integrity, err = r.ReadBool(); err != nil {
		return header{}, err
	}
	return h, nil
}

// entryWriter frames an entry: magic, header, body and an optional checksum trailer.
type entryWriter struct {
	raw    io.Writer
	hasher *xxhash.Digest
	*codec.Writer
}

func newEntryWriter(w io.Writer, registry *codec.Registry, h header) (*entryWriter, error) {
	ew := &entryWriter{raw: w}
	out := w
	if h.integrity {
		ew.hasher = xxhash.New()
		out = io.MultiWriter(w, ew.hasher)
	}
	if _, err := out.Write(magic); err != nil {
		return nil, zerr.Wrap(err, "failed to write entry magic")
	}
	// The top level of an entry never deduplicates; task segments carry their own scopes.
	ew.Writer = codec.NewWriter(out, registry, codec.NewScope(codec.ScopeOptions{}))
	if err := writeHeader(ew.Writer, h); err != nil {
		return nil, zerr.Wrap(err, "failed to write entry header")
	}
	return ew, nil
}

// finish writes the checksum trailer when integrity checking is on.
func (ew *entryWriter) finish() error {
	if ew.hasher == nil {
		return nil
	}
	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint64(trailer[:], ew.hasher.Sum64())
	if _, err := ew.raw.Write(trailer[:]); err != nil {
		return zerr.Wrap(err, "failed to write entry checksum")
	}
	return nil
}

// openEntry validates the framing of data and returns a reader positioned at
// the start of the body. The checksum is verified when either the header or
// requireIntegrity asks for it; an entry without one is rejected when
// requireIntegrity is set.
func openEntry(data []byte, registry *codec.Registry, requireIntegrity bool) (*codec.Reader, header, error) {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic) {
		return nil, header{}, zerr.Wrap(domain.ErrIncompatibleEntry, "bad magic")
	}
	r := codec.NewReader(bytes.NewReader(data[len(magic):]), registry, codec.NewScope(codec.ScopeOptions{}))
	h, err := readHeader(r)
	if err != nil {
		return nil, header{}, err
	}
	if requireIntegrity && !h.integrity {
		return nil, header{}, zerr.Wrap(domain.ErrCorruptEntry, "missing checksum")
	}
	if h.integrity {
		if len(data) < len(magic)+trailerSize {
			return nil, header{}, zerr.Wrap(domain.ErrCorruptEntry, "truncated")
		}
		body, trailer := data[:len(data)-trailerSize], data[len(data)-trailerSize:]
		if xxhash.Sum64(body) != binary.LittleEndian.Uint64(trailer) {
			return nil, header{}, zerr.Wrap(domain.ErrCorruptEntry, "checksum mismatch")
		}
	}
	return r, h, nil
}
