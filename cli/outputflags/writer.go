package outputflags

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Row describes one value and where it lives in the buffer.
type Row struct {
	Value  interface{} `json:"value" yaml:"value"`
	Offset int         `json:"offset" yaml:"offset"`
	Size   int         `json:"size" yaml:"size"`
	Hex    string      `json:"hex,omitempty" yaml:"hex,omitempty"`
}

// Result is the output of a vlong command.  Bytes is the total length of
// the encoding and Hex, when set, is the whole buffer.
type Result struct {
	Form  string `json:"form" yaml:"form"`
	Rows  []Row  `json:"rows" yaml:"rows"`
	Bytes int    `json:"bytes" yaml:"bytes"`
	Hex   string `json:"hex,omitempty" yaml:"hex,omitempty"`
}

func (f *Flags) Write(w io.Writer, r *Result) error {
	switch f.Format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeTable(w, r)
	}
	return fmt.Errorf("unknown output format: %s", f.Format)
}

func writeTable(w io.Writer, r *Result) error {
	table := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(table, "VALUE\tOFFSET\tSIZE\tHEX")
	for _, row := range r.Rows {
		fmt.Fprintf(table, "%v\t%d\t%d\t%s\n", row.Value, row.Offset, row.Size, row.Hex)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	if r.Hex != "" {
		_, err := fmt.Fprintf(w, "%s: %d bytes: %s\n", r.Form, r.Bytes, r.Hex)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d bytes\n", r.Form, r.Bytes)
	return err
}
