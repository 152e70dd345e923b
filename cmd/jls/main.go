// Command jls lists directory trees described by a JSON document,
// mimicking a subset of 'ls'.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/somebuddhapaul1/pyls-project/cli"
)

func main() {
	app := kingpin.New("jls", "List directory trees described by a JSON document.")

	a := cli.NewApp()
	a.Attach(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		a.ExitWithError(err)
	}
}
