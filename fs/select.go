package fs

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// TypeFilter restricts a listing to entries of one kind.
type TypeFilter int

// Supported type filters.
const (
	FilterNone TypeFilter = iota
	FilterFilesOnly
	FilterDirectoriesOnly
)

// ParseTypeFilter maps a filter flag value to a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch s {
	case "":
		return FilterNone, nil
	case "files":
		return FilterFilesOnly, nil
	case "dirs":
		return FilterDirectoriesOnly, nil
	default:
		return FilterNone, errors.Errorf("'%v' is not a valid filter, supported filters are 'files' and 'dirs'", s)
	}
}

// Criteria selects and orders sibling entries for display.
type Criteria struct {
	IncludeHidden bool
	SortByTime    bool // most recent first
	Reverse       bool
	TypeFilter    TypeFilter
}

// Select returns a new slice with the entries matching the criteria,
// ordered for display. The input slice is not modified.
//
// Name ordering is case-sensitive lexicographic. Time ordering puts the
// most recently modified entry first and breaks ties by name, so the
// result is deterministic for any input.
func (c Criteria) Select(entries []*Entry) []*Entry {
	result := make([]*Entry, 0, len(entries))

	for _, e := range entries {
		if c.shouldInclude(e) {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if c.SortByTime && !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.After(b.ModTime)
		}

		return a.Name < b.Name
	})

	if c.Reverse {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

func (c Criteria) shouldInclude(e *Entry) bool {
	if !c.IncludeHidden && strings.HasPrefix(e.Name, ".") {
		return false
	}

	switch c.TypeFilter {
	case FilterFilesOnly:
		return !e.IsDir()
	case FilterDirectoriesOnly:
		return e.IsDir()
	default:
		return true
	}
}
