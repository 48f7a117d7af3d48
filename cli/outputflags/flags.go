// Package outputflags renders the rows produced by the vlong commands as
// a text table, JSON, or YAML.
package outputflags

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML}

func (f *Format) Set(s string) error {
	format := Format(strings.ToLower(s))
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown output format: %s", s)
	}
	*f = format
	return nil
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

type Flags struct {
	Format Format
}

// SetFlags registers -f.  A Format already present in the receiver is
// kept as the default.
func (f *Flags) SetFlags(fs *flag.FlagSet) {
	if f.Format == "" {
		f.Format = FormatText
	}
	fs.Var(&f.Format, "f", "format for output data (values: text, json, yaml)")
}
