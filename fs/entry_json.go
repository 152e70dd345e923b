package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/somebuddhapaul1/pyls-project/internal/logging"
)

var log = logging.Module("jls/fs")

// ErrInvalidTreeData is returned when the input document is not valid
// JSON or does not describe a valid tree.
var ErrInvalidTreeData = errors.New("invalid tree data")

// jsonEntry is the wire representation of a single entry.
type jsonEntry struct {
	Name        string          `json:"name"`
	IsDirectory bool            `json:"is_directory"`
	Size        *int64          `json:"size"`
	Permissions json.RawMessage `json:"permissions"`
	ModifiedAt  json.RawMessage `json:"modified_at"`
	Children    []*jsonEntry    `json:"children"`

	// distinguishes "children": [] from an absent key.
	rawChildren bool
}

func (je *jsonEntry) UnmarshalJSON(b []byte) error {
	type alias jsonEntry

	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}

	_, hasChildren := keys["children"]

	*je = jsonEntry(a)
	je.rawChildren = hasChildren

	return nil
}

// Load reads a JSON tree document and returns its root entry.
func Load(ctx context.Context, r io.Reader) (*Entry, error) {
	var je jsonEntry
	if err := json.NewDecoder(r).Decode(&je); err != nil {
		return nil, errors.Wrapf(ErrInvalidTreeData, "parse error: %v", err)
	}

	root, err := decodeEntry(&je, je.Name)
	if err != nil {
		return nil, err
	}

	log(ctx).Debugw("loaded tree", "root", root.Name, "entries", countEntries(root))

	return root, nil
}

// LoadFile loads the tree document from a file.
func LoadFile(ctx context.Context, path string) (*Entry, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "unable to open structure file")
	}
	defer f.Close() //nolint:errcheck

	return Load(ctx, f)
}

func decodeEntry(je *jsonEntry, path string) (*Entry, error) {
	switch {
	case je.Name == "":
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': entry without a name", path)
	case strings.Contains(je.Name, "/"):
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': name contains a path separator", path)
	case je.Size != nil && *je.Size < 0:
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': negative size", path)
	case !je.IsDirectory && je.rawChildren:
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': children on a non-directory", path)
	case je.IsDirectory && !je.rawChildren:
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': directory without children", path)
	}

	perm, err := parsePermissions(je.Permissions)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': %v", path, err)
	}

	modTime, err := parseModTime(je.ModifiedAt)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': %v", path, err)
	}

	e := &Entry{
		Name:        je.Name,
		Permissions: perm,
		ModTime:     modTime,
		Dir:         je.IsDirectory,
	}

	if je.Size != nil {
		e.FileSize = *je.Size
	}

	if je.IsDirectory {
		e.Entries = make([]*Entry, 0, len(je.Children))
		seen := map[string]bool{}

		for _, jc := range je.Children {
			c, err := decodeEntry(jc, path+"/"+jc.Name)
			if err != nil {
				return nil, err
			}

			if seen[c.Name] {
				return nil, errors.Wrapf(ErrInvalidTreeData, "'%v': duplicate entry", path+"/"+c.Name)
			}

			seen[c.Name] = true
			e.Entries = append(e.Entries, c)
		}
	}

	return e, nil
}

// parsePermissions accepts either a JSON number with raw mode bits or a
// string of octal digits.
func parsePermissions(raw json.RawMessage) (uint32, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errors.Wrap(err, "invalid permissions")
		}

		if s == "" {
			return 0, nil
		}

		v, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return 0, errors.Wrap(err, "invalid permissions")
		}

		return uint32(v), nil
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.Wrap(err, "invalid permissions")
	}

	if n < 0 {
		return 0, errors.Errorf("invalid permissions: %v", n)
	}

	return uint32(n), nil
}

// parseModTime accepts either a JSON number of Unix seconds or an
// RFC 3339 string.
func parseModTime(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, errors.Wrap(err, "invalid modified_at")
		}

		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "invalid modified_at")
		}

		return t, nil
	}

	var sec int64
	if err := json.Unmarshal(raw, &sec); err != nil {
		return time.Time{}, errors.Wrap(err, "invalid modified_at")
	}

	return time.Unix(sec, 0), nil
}

func countEntries(e *Entry) int {
	n := 1
	for _, c := range e.Entries {
		n += countEntries(c)
	}

	return n
}
