package charm

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootCommand struct {
	verbose bool
}

func (*rootCommand) Run([]string) error {
	return ErrNoRun
}

type leafCommand struct {
	*rootCommand
	count int
	args  []string
	ran   *leafCommand
}

func (l *leafCommand) Run(args []string) error {
	l.args = args
	*l.ran = *l
	return nil
}

func newTree(ran *leafCommand) *Spec {
	root := &Spec{
		Name:  "tool",
		Usage: "tool [global options] command",
		Short: "test tool",
		New: func(_ Command, f *flag.FlagSet) (Command, error) {
			c := &rootCommand{}
			f.BoolVar(&c.verbose, "verbose", false, "be chatty")
			return c, nil
		},
	}
	leaf := &Spec{
		Name:        "leaf",
		Usage:       "leaf [-n count] args",
		Short:       "a leaf command",
		Long:        "The leaf command records its arguments.\n\nIt does nothing else.",
		HiddenFlags: "secret",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			c := &leafCommand{rootCommand: parent.(*rootCommand), ran: ran}
			f.IntVar(&c.count, "n", 1, "how many")
			f.Bool("secret", false, "hidden flag")
			return c, nil
		},
	}
	hidden := &Spec{
		Name:   "ghost",
		Short:  "hidden command",
		Hidden: true,
		New:    leaf.New,
	}
	root.Add(leaf)
	root.Add(hidden)
	root.Add(Help)
	return root
}

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	saved := Output
	Output = &buf
	t.Cleanup(func() { Output = saved })
	return &buf
}

func TestDispatch(t *testing.T) {
	var ran leafCommand
	root := newTree(&ran)
	require.NoError(t, root.ExecRoot([]string{"-verbose", "leaf", "-n", "3", "a", "b"}))
	assert.True(t, ran.verbose)
	assert.Equal(t, 3, ran.count)
	assert.Equal(t, []string{"a", "b"}, ran.args)
	assert.Same(t, root, Help.Root())
}

func TestExec(t *testing.T) {
	var ran leafCommand
	root := newTree(&ran)
	leaf := root.lookupSub("leaf")
	require.NoError(t, leaf.Exec(&rootCommand{verbose: true}, []string{"x"}))
	assert.True(t, ran.verbose)
	assert.Equal(t, []string{"x"}, ran.args)
}

func TestNoSubCommand(t *testing.T) {
	root := newTree(&leafCommand{})
	err := root.ExecRoot(nil)
	assert.EqualError(t, err, `"tool": requires a sub-command: leaf help`)
	err = root.ExecRoot([]string{"bogus"})
	assert.EqualError(t, err, `"tool": no such sub-command "bogus": options are: leaf help`)
}

func TestBadFlag(t *testing.T) {
	root := newTree(&leafCommand{})
	err := root.ExecRoot([]string{"leaf", "-bogus"})
	assert.EqualError(t, err, "flag provided but not defined: -bogus")
}

func TestHelpFlag(t *testing.T) {
	out := captureOutput(t)
	var ran leafCommand
	root := newTree(&ran)
	require.NoError(t, root.ExecRoot([]string{"leaf", "-h"}))
	assert.Nil(t, ran.args)
	s := out.String()
	assert.Contains(t, s, "tool leaf - a leaf command")
	assert.Contains(t, s, `-n how many (default "1")`)
	assert.Contains(t, s, "TOOL OPTIONS")
	assert.Contains(t, s, "-verbose be chatty")
	assert.Contains(t, s, "It does nothing else.")
	assert.NotContains(t, s, "-secret")
}

func TestHelpCommand(t *testing.T) {
	out := captureOutput(t)
	root := newTree(&leafCommand{})
	require.NoError(t, root.ExecRoot([]string{"help"}))
	s := out.String()
	assert.Contains(t, s, "leaf - a leaf command")
	assert.NotContains(t, s, "ghost")

	out.Reset()
	require.NoError(t, root.ExecRoot([]string{"help", "-v", "leaf"}))
	assert.Contains(t, out.String(), "[-secret] hidden flag")

	out.Reset()
	require.NoError(t, root.ExecRoot([]string{"help", "-v"}))
	assert.Contains(t, out.String(), "[ghost] - hidden command")

	err := root.ExecRoot([]string{"help", "leaf", "nope"})
	assert.EqualError(t, err, "no such command: leaf nope")
}

func TestNilConstructor(t *testing.T) {
	err := (&Spec{Name: "broken"}).ExecRoot(nil)
	assert.EqualError(t, err, `command "broken": New function is nil`)
}
