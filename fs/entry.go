// Package fs implements an immutable in-memory directory tree loaded
// from a JSON document, along with selection and ordering of entries
// for display.
package fs

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Entry represents a single file or directory in the loaded tree.
// Entries are never modified after the tree is loaded.
type Entry struct {
	Name        string
	FileSize    int64
	Permissions uint32
	ModTime     time.Time
	Dir         bool

	// Entries holds direct children in document order.
	// It is nil for files and non-nil (possibly empty) for directories.
	Entries []*Entry
}

// IsDir determines whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Dir
}

// ErrEntryNotFound is returned when an entry is not found.
var ErrEntryNotFound = errors.New("no such file or directory")

// ErrNotADirectory is returned when a path component resolves to a file.
var ErrNotADirectory = errors.New("not a directory")

// Child returns the direct child of a directory with the given name.
func (e *Entry) Child(name string) (*Entry, error) {
	for _, c := range e.Entries {
		if c.Name == name {
			return c, nil
		}
	}

	return nil, ErrEntryNotFound
}

// Resolve walks a slash-separated path from the root entry and returns
// the entry it denotes. The empty path, "." and "/" all denote the root.
// Intermediate components must be directories.
func Resolve(root *Entry, path string) (*Entry, error) {
	cur := root

	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}

		if !cur.IsDir() {
			return nil, errors.Wrapf(ErrNotADirectory, "'%v'", cur.Name)
		}

		c, err := cur.Child(part)
		if err != nil {
			return nil, err
		}

		cur = c
	}

	return cur, nil
}
