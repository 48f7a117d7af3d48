// Package charm is a minimalist CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
	"io"
	"os"
)

var (
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

// Output is where help is written.
var Output io.Writer = os.Stderr

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden bool
	// HiddenFlags (comma-separated) marks these flags as hidden.
	HiddenFlags string
	children    []*Spec
	parent      *Spec
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) Root() *Spec {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// Exec runs s as a sub-command of parent.
func (s *Spec) Exec(parent Command, args []string) error {
	path, rest, err := parse(s, args, parent)
	if err != nil {
		return err
	}
	return path.run(rest)
}

// ExecRoot parses args against the command tree rooted at s and runs the
// command selected.  A -h or -help flag anywhere along the way displays
// help for the deepest command parsed.
func (s *Spec) ExecRoot(args []string) error {
	path, rest, err := parse(s, args, nil)
	if err == nil {
		err = path.run(rest)
	}
	if err == NeedHelp && len(path) > 0 {
		displayHelp(Output, path, false)
		return nil
	}
	return err
}

func parse(spec *Spec, args []string, parent Command) (path, []string, error) {
	var p path
	for {
		inst, err := newInstance(parent, spec)
		if err != nil {
			return p, nil, err
		}
		p = append(p, inst)
		rest, err := parseFlags(inst.flags, args)
		if err != nil || len(rest) == 0 {
			return p, rest, err
		}
		child := spec.lookupSub(rest[0])
		if child == nil {
			return p, rest, nil
		}
		spec, args, parent = child, rest[1:], inst.command
	}
}

func parseFlags(flags *flag.FlagSet, args []string) ([]string, error) {
	flags.SetOutput(io.Discard)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, NeedHelp
		}
		return nil, err
	}
	return flags.Args(), nil
}
