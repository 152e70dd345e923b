// Package cli implements the command-line interface of jls.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap/zapcore"

	"github.com/somebuddhapaul1/pyls-project/fs"
	"github.com/somebuddhapaul1/pyls-project/internal/logging"
)

//nolint:gochecknoglobals
var errorColor = color.New(color.FgHiRed)

type commandParent interface {
	Command(name, help string) *kingpin.CmdClause
}

// appServices are the methods of App that command implementations rely on.
type appServices interface {
	rootEntryAction(act func(ctx context.Context, root *fs.Entry) error) func(*kingpin.ParseContext) error
	stdout() io.Writer
	stderr() io.Writer
}

// App contains per-invocation flags and state of the CLI.
type App struct {
	structureFile string
	logLevel      string

	stdoutWriter io.Writer
	stderrWriter io.Writer

	list commandList
}

// NewApp creates the application object with OS output streams.
func NewApp() *App {
	return &App{
		stdoutWriter: colorable.NewColorableStdout(),
		stderrWriter: colorable.NewColorableStderr(),
	}
}

// SetStreams overrides the output streams, used in tests.
func (a *App) SetStreams(stdout, stderr io.Writer) {
	a.stdoutWriter = stdout
	a.stderrWriter = stderr
}

func (a *App) stdout() io.Writer {
	return a.stdoutWriter
}

func (a *App) stderr() io.Writer {
	return a.stderrWriter
}

// Attach registers all flags and commands with the kingpin application.
func (a *App) Attach(app *kingpin.Application) {
	app.Flag("structure-file", "Path of the JSON document describing the directory tree.").Default("structure.json").Envar("JLS_STRUCTURE_FILE").StringVar(&a.structureFile)
	app.Flag("log-level", "Console log level").Hidden().Default("warn").EnumVar(&a.logLevel, "debug", "info", "warn", "error")

	a.list.setup(a, app)
}

// ExitWithError prints the error and terminates the process with a
// non-zero exit code.
func (a *App) ExitWithError(err error) {
	errorColor.Fprintf(a.stderrWriter, "jls: %v\n", err) //nolint:errcheck
	os.Exit(1)
}

// rootEntryAction returns a kingpin action that loads the tree document
// and passes its root entry to the wrapped action.
func (a *App) rootEntryAction(act func(ctx context.Context, root *fs.Entry) error) func(*kingpin.ParseContext) error {
	return func(_ *kingpin.ParseContext) error {
		ctx := a.rootContext()

		root, err := fs.LoadFile(ctx, a.structureFile)
		if err != nil {
			return err
		}

		return act(ctx, root)
	}
}

func (a *App) rootContext() context.Context {
	level, err := zapcore.ParseLevel(a.logLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}

	return logging.WithLogger(context.Background(), logging.Console(a.stderrWriter, level))
}
