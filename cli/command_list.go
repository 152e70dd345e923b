package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/somebuddhapaul1/pyls-project/fs"
	"github.com/somebuddhapaul1/pyls-project/internal/logging"
	"github.com/somebuddhapaul1/pyls-project/internal/units"
)

var log = logging.Module("jls/cli")

type commandList struct {
	almostAll     bool
	long          bool
	sortByTime    bool
	reverse       bool
	humanReadable bool
	typeFilter    string
	path          string

	out textOutput
}

func (c *commandList) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("list", "List the contents of a directory within the loaded tree.").Alias("ls").Default()

	cmd.Flag("almost-all", "Include entries whose names start with a dot").Short('A').BoolVar(&c.almostAll)
	cmd.Flag("long", "Long output").Short('l').BoolVar(&c.long)
	cmd.Flag("time", "Sort by modification time, most recent first").Short('t').BoolVar(&c.sortByTime)
	cmd.Flag("reverse", "Reverse the sort order").Short('r').BoolVar(&c.reverse)
	cmd.Flag("human-readable", "Show sizes in human-readable units").Short('h').BoolVar(&c.humanReadable)
	cmd.Flag("filter", "Limit the listing to one entry type ('files' or 'dirs')").EnumVar(&c.typeFilter, "files", "dirs")
	cmd.Arg("path", "Path within the tree (defaults to the root)").StringVar(&c.path)
	cmd.Action(svc.rootEntryAction(c.run))

	c.out.setup(svc)
}

func (c *commandList) run(ctx context.Context, root *fs.Entry) error {
	target, err := fs.Resolve(root, c.path)
	if err != nil {
		return errors.Wrapf(err, "cannot access '%v'", c.path)
	}

	typeFilter, err := fs.ParseTypeFilter(c.typeFilter)
	if err != nil {
		return err
	}

	crit := fs.Criteria{
		IncludeHidden: c.almostAll,
		SortByTime:    c.sortByTime,
		Reverse:       c.reverse,
		TypeFilter:    typeFilter,
	}

	var entries []*fs.Entry
	if target.IsDir() {
		entries = crit.Select(target.Entries)
	} else {
		entries = []*fs.Entry{target}
	}

	log(ctx).Debugw("listing", "path", c.path, "entries", len(entries))

	// Format everything up front so that a malformed record produces
	// no output at all rather than a truncated listing.
	lines, err := c.formatEntries(entries)
	if err != nil {
		return err
	}

	for _, l := range lines {
		c.out.printStdout("%v\n", l)
	}

	return nil
}

// formatEntries renders the selected entries. Plain mode produces a
// single line of space-separated names, long mode one line per entry.
func (c *commandList) formatEntries(entries []*fs.Entry) ([]string, error) {
	if !c.long {
		if len(entries) == 0 {
			return nil, nil
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}

		return []string{strings.Join(names, " ")}, nil
	}

	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		l, err := c.longLine(e)
		if err != nil {
			return nil, err
		}

		lines = append(lines, l)
	}

	return lines, nil
}

func (c *commandList) longLine(e *fs.Entry) (string, error) {
	perm, err := e.ModeString()
	if err != nil {
		return "", errors.Wrapf(err, "cannot format '%v'", e.Name)
	}

	size := fmt.Sprintf("%v", e.FileSize)
	if c.humanReadable {
		size = units.BytesString(e.FileSize)
	}

	return fmt.Sprintf("%v %8v %v %v", perm, size, formatTimestamp(e.ModTime), e.Name), nil
}

// formatTimestamp renders modification times the way 'ls -l' does.
func formatTimestamp(t time.Time) string {
	return t.Local().Format("Jan 02 15:04")
}
