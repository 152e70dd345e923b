package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/require"

	"github.com/somebuddhapaul1/pyls-project/fs"
)

const testStructure = `{
  "name": "project",
  "is_directory": true,
  "size": 4096,
  "permissions": "755",
  "modified_at": "2023-11-14T10:00:00Z",
  "children": [
    {"name": ".hidden", "is_directory": false, "size": 10, "permissions": "600", "modified_at": "2023-11-14T11:00:00Z"},
    {"name": "b.txt", "is_directory": false, "size": 2048, "permissions": "644", "modified_at": "2023-11-14T12:00:00Z"},
    {"name": "a.txt", "is_directory": false, "size": 10, "permissions": "644", "modified_at": "2023-11-14T09:00:00Z"},
    {"name": "src", "is_directory": true, "size": 4096, "permissions": "755", "modified_at": "2023-11-14T08:00:00Z", "children": [
      {"name": "main.go", "is_directory": false, "size": 1536, "permissions": "644", "modified_at": "2023-11-14T07:00:00Z"}
    ]}
  ]
}`

func runListWith(t *testing.T, doc string, args ...string) (string, error) {
	t.Helper()

	structPath := filepath.Join(t.TempDir(), "structure.json")
	require.NoError(t, os.WriteFile(structPath, []byte(doc), 0o600))

	var stdout, stderr bytes.Buffer

	app := kingpin.New("jls", "testing")

	a := NewApp()
	a.SetStreams(&stdout, &stderr)
	a.Attach(app)

	_, err := app.Parse(append([]string{"--structure-file", structPath}, args...))

	return stdout.String(), err
}

func runList(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return runListWith(t, testStructure, args...)
}

func TestListPlain(t *testing.T) {
	out, err := runList(t)
	require.NoError(t, err)
	require.Equal(t, "a.txt b.txt src\n", out)
}

func TestListAll(t *testing.T) {
	out, err := runList(t, "-A")
	require.NoError(t, err)
	require.Equal(t, ".hidden a.txt b.txt src\n", out)
}

func TestListTimeReversedAll(t *testing.T) {
	out, err := runList(t, "-A", "-t", "-r")
	require.NoError(t, err)
	require.Equal(t, "src a.txt .hidden b.txt\n", out)
}

func TestListFilter(t *testing.T) {
	out, err := runList(t, "--filter", "dirs")
	require.NoError(t, err)
	require.Equal(t, "src\n", out)

	out, err = runList(t, "--filter", "files")
	require.NoError(t, err)
	require.Equal(t, "a.txt b.txt\n", out)
}

func TestListFilterInvalid(t *testing.T) {
	out, err := runList(t, "--filter", "symlinks")
	require.Error(t, err)
	require.Empty(t, out)
}

func TestListSubdirectory(t *testing.T) {
	out, err := runList(t, "src")
	require.NoError(t, err)
	require.Equal(t, "main.go\n", out)

	// explicit command names work too
	out, err = runList(t, "ls", "src")
	require.NoError(t, err)
	require.Equal(t, "main.go\n", out)
}

func TestListLong(t *testing.T) {
	out, err := runList(t, "-l", "src")
	require.NoError(t, err)

	ts := formatTimestamp(time.Date(2023, time.November, 14, 7, 0, 0, 0, time.UTC))
	require.Equal(t, fmt.Sprintf("-rw-r--r-- %8v %v main.go\n", 1536, ts), out)
}

func TestListLongHumanReadable(t *testing.T) {
	out, err := runList(t, "-l", "-h", "src")
	require.NoError(t, err)

	ts := formatTimestamp(time.Date(2023, time.November, 14, 7, 0, 0, 0, time.UTC))
	require.Equal(t, fmt.Sprintf("-rw-r--r-- %8v %v main.go\n", "1.5K", ts), out)
}

func TestListFileTarget(t *testing.T) {
	out, err := runList(t, "a.txt")
	require.NoError(t, err)
	require.Equal(t, "a.txt\n", out)

	out, err = runList(t, "-l", "a.txt")
	require.NoError(t, err)

	ts := formatTimestamp(time.Date(2023, time.November, 14, 9, 0, 0, 0, time.UTC))
	require.Equal(t, fmt.Sprintf("-rw-r--r-- %8v %v a.txt\n", 10, ts), out)
}

func TestListEmptyDirectory(t *testing.T) {
	doc := `{"name": "root", "is_directory": true, "children": []}`

	out, err := runListWith(t, doc)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestListBadPath(t *testing.T) {
	out, err := runList(t, "no/such/path")
	require.ErrorIs(t, err, fs.ErrEntryNotFound)
	require.Empty(t, out)

	out, err = runList(t, "a.txt/oops")
	require.ErrorIs(t, err, fs.ErrNotADirectory)
	require.Empty(t, out)
}

func TestListMissingStructureFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	app := kingpin.New("jls", "testing")

	a := NewApp()
	a.SetStreams(&stdout, &stderr)
	a.Attach(app)

	_, err := app.Parse([]string{"--structure-file", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
	require.Empty(t, stdout.String())
}

func TestListMalformedPermissions(t *testing.T) {
	doc := `{"name": "root", "is_directory": true, "children": [
		{"name": "ok.txt", "is_directory": false, "size": 1, "permissions": "644"},
		{"name": "broken.txt", "is_directory": false, "size": 1, "permissions": 1000}
	]}`

	// plain mode never renders permissions
	out, err := runListWith(t, doc)
	require.NoError(t, err)
	require.Equal(t, "broken.txt ok.txt\n", out)

	// long mode fails without printing a partial listing
	out, err = runListWith(t, doc, "-l")
	require.ErrorIs(t, err, fs.ErrPermissionsOutOfRange)
	require.Empty(t, out)
}
