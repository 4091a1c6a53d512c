package storage

import (
	"errors"
)

// Common errors that can be returned by any storage implementation
var (
	ErrNotFound = errors.New("data file not found")
	ErrParse    = errors.New("malformed data file")
	ErrWrite    = errors.New("cannot write data file")
)

// RecordStore is an ordered collection of records that can render itself as
// a table and be persisted as a whole.
type RecordStore interface {
	// Len returns the number of records held in memory.
	Len() int

	// String renders the collection as a fixed-width table.
	String() string

	// Save writes every record to path, replacing the file.
	Save(path string) error

	// Load replaces the in-memory records with the contents of path.
	Load(path string) error
}
