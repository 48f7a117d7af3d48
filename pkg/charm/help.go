package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/text"
	"golang.org/x/term"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a sub-command, type "help command" where command is the name of
the command.  For help on commands nested further, type "help cmd1 cmd2" and
so forth.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	vflag bool
}

func (c *HelpCommand) Run(args []string) error {
	p, err := search(Help.Root(), args)
	if err != nil {
		return err
	}
	displayHelp(Output, p, c.vflag)
	return nil
}

// search instantiates the commands named by args beneath root.
func search(root *Spec, args []string) (path, error) {
	inst, err := newInstance(nil, root)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for k, arg := range args {
		spec := inst.spec.lookupSub(arg)
		if spec == nil {
			return nil, fmt.Errorf("no such command: %s", strings.Join(args[:k+1], " "))
		}
		if inst, err = newInstance(inst.command, spec); err != nil {
			return nil, err
		}
		p = append(p, inst)
	}
	return p, nil
}

const tab = "    "

func width() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func header(heading string) string {
	return "\033[1m" + heading + "\033[0m"
}

func formatParagraphs(body string, lineWidth int) string {
	var chunks []string
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		chunks = append(chunks, text.Indent(text.Wrap(paragraph, lineWidth), tab))
	}
	return strings.Join(chunks, "\n\n")
}

func helpSection(w io.Writer, heading string, lines []string) {
	fmt.Fprintf(w, "%s\n%s%s\n\n", header(heading), tab, strings.Join(lines, "\n"+tab))
}

func options(inst *instance, vflag bool) []string {
	hidden := make(map[string]bool)
	for _, name := range strings.Split(inst.spec.HiddenFlags, ",") {
		hidden[strings.TrimSpace(name)] = true
	}
	var lines []string
	inst.flags.VisitAll(func(f *flag.Flag) {
		name := "-" + f.Name
		if hidden[f.Name] {
			if !vflag {
				return
			}
			name = "[" + name + "]"
		}
		line := name + " " + f.Usage
		if f.DefValue != "" {
			line = fmt.Sprintf("%s (default %q)", line, f.DefValue)
		}
		lines = append(lines, line)
	})
	return lines
}

func commands(spec *Spec, vflag bool) []string {
	var lines []string
	for _, child := range spec.children {
		name := child.Name
		if child.Hidden {
			if !vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+child.Short)
	}
	return lines
}

func displayHelp(w io.Writer, p path, vflag bool) {
	last := p.last()
	helpSection(w, "NAME", []string{p.pathname() + " - " + last.spec.Short})
	helpSection(w, "USAGE", []string{last.spec.Usage})
	for k := len(p) - 1; k >= 0; k-- {
		heading := "OPTIONS"
		if k != len(p)-1 {
			heading = strings.ToUpper(p[k].spec.Name) + " OPTIONS"
		}
		if lines := options(p[k], vflag); len(lines) > 0 {
			helpSection(w, heading, lines)
		} else if k == len(p)-1 {
			helpSection(w, heading, []string{"no flags for this command"})
		}
	}
	if lines := commands(last.spec, vflag); len(lines) > 0 {
		helpSection(w, "COMMANDS", lines)
	}
	if last.spec.Long != "" {
		lineWidth := width() - len(tab) - 5
		fmt.Fprintf(w, "%s\n%s\n\n", header("DESCRIPTION"), formatParagraphs(last.spec.Long, lineWidth))
	}
}
