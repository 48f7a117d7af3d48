package root

import (
	"flag"
	"io"
	"os"

	"github.com/brimdata/vlong/cli"
	"github.com/brimdata/vlong/pkg/charm"
)

var Vlong = &charm.Spec{
	Name:  "vlong",
	Usage: "vlong [global options] <command> [options] [arguments...]",
	Short: "encode, decode, and size VLong integers",
	Long: `
vlong is a command-line tool for inspecting the VLong integer encodings:
zigzag-mapped signed varints, unsigned base-128 varints, and fixed-width
big-endian 32-bit integers.

Global options may be given in a YAML file with -config.  Options that
follow -config on the command line override the file.`,
	New: New,
}

func init() {
	Vlong.Add(charm.Help)
}

// Stdout is where command output goes.
var Stdout io.Writer = os.Stdout

type Command struct {
	cli.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.PrintVersion(Stdout) {
		return nil
	}
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}
