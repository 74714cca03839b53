package ports

import (
	"io"

	"go.trai.ch/instant/internal/core/domain"
)

//go:generate mockgen -source=entry_store.go -destination=mocks/mock_entry_store.go -package=mocks

// EntryStore persists cache entries.
type EntryStore interface {
	// Location returns the file path of the entry.
	Location(ref domain.EntryRef) string
	// Exists reports whether a complete entry is present.
	Exists(ref domain.EntryRef) (bool, error)
	// Create starts writing an entry. Nothing is visible at the entry's
	// location until the pending entry is committed.
	Create(ref domain.EntryRef) (PendingEntry, error)
	// Open opens a complete entry for reading.
	Open(ref domain.EntryRef) (io.ReadCloser, error)
	// Clean removes every entry under rootDir.
	Clean(rootDir string) error
}

// PendingEntry is an entry being written.
type PendingEntry interface {
	io.Writer
	// Commit publishes the entry.
	Commit() error
	// Abort discards the entry. It is a no-op after Commit.
	Abort() error
}
