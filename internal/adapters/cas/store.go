// Package cas implements the content-addressed store for cache entries. Each
// entry lives in a file named after its key below the engine version directory.
package cas

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.EntryStore on the local file system.
type Store struct{}

var _ ports.EntryStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Location returns the file path of the entry.
func (s *Store) Location(ref domain.EntryRef) string {
	return filepath.Join(domain.VersionDir(ref.RootDir, ref.EngineVersion), ref.Key+domain.EntryExtension)
}

// Exists reports whether a committed entry is present.
func (s *Store) Exists(ref domain.EntryRef) (bool, error) {
	info, err := os.Stat(s.Location(ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, "failed to stat cache entry")
	}
	return info.Mode().IsRegular(), nil
}

// Create opens a pending entry next to the final location. The entry becomes
// visible only on Commit.
func (s *Store) Create(ref domain.EntryRef) (ports.PendingEntry, error) {
	target := s.Location(ref)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", dir)
	}

	tmp := filepath.Join(dir, ulid.Make().String()+domain.PendingSuffix)
	//nolint:gosec // Path is derived from the build root and a digest
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		// A store that cannot start still invalidates the entry it would replace.
		_ = removeIfExists(target)
		return nil, zerr.With(zerr.Wrap(err, "failed to create pending cache entry"), "path", tmp)
	}
	return &pendingEntry{file: f, target: target}, nil
}

// Open opens a committed entry.
func (s *Store) Open(ref domain.EntryRef) (io.ReadCloser, error) {
	path := s.Location(ref)
	//nolint:gosec // Path is derived from the build root and a digest
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "open"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open cache entry"), "path", path)
	}
	return f, nil
}

// Clean removes the state directory under rootDir, including entries of
// other engine versions.
func (s *Store) Clean(rootDir string) error {
	if err := os.RemoveAll(domain.StateDir(rootDir)); err != nil {
		return zerr.Wrap(err, "failed to remove instant execution state")
	}
	return nil
}

// pendingEntry is an entry being written. Until Commit succeeds the entry
// location is considered invalid: Abort removes both the pending file and any
// entry previously committed at the target.
type pendingEntry struct {
	file      *os.File
	target    string
	closed    bool
	committed bool
}

func (p *pendingEntry) Write(b []byte) (int, error) {
	return p.file.Write(b)
}

func (p *pendingEntry) close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.file.Close()
}

// Commit syncs the pending file and renames it over the target.
func (p *pendingEntry) Commit() error {
	if p.committed {
		return nil
	}
	if p.closed {
		return zerr.With(zerr.New("cache entry already aborted"), "path", p.target)
	}
	tmp := p.file.Name()
	if err := p.file.Sync(); err != nil {
		_ = p.close()
		_ = removeIfExists(tmp)
		return zerr.Wrap(err, "failed to sync cache entry")
	}
	if err := p.close(); err != nil {
		_ = removeIfExists(tmp)
		return zerr.Wrap(err, "failed to close cache entry")
	}
	if err := os.Rename(tmp, p.target); err != nil {
		_ = removeIfExists(tmp)
		return zerr.With(zerr.Wrap(err, "failed to publish cache entry"), "path", p.target)
	}
	p.committed = true
	return nil
}

// Abort discards the pending file and the entry it was meant to replace.
// It does nothing after a successful Commit.
func (p *pendingEntry) Abort() error {
	if p.committed {
		return nil
	}
	_ = p.close()
	if err := removeIfExists(p.file.Name()); err != nil {
		return zerr.Wrap(err, "failed to remove pending cache entry")
	}
	if err := removeIfExists(p.target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove stale cache entry"), "path", p.target)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
