package decode

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/vlong/cli"
	"github.com/brimdata/vlong/cli/outputflags"
	"github.com/brimdata/vlong/cmd/vlong/root"
	"github.com/brimdata/vlong/pkg/charm"
	"github.com/brimdata/vlong/vcode"
	"go.uber.org/zap"
)

var Decode = &charm.Spec{
	Name:  "decode",
	Usage: "decode [-form signed|unsigned|fixed32] [-f format] hex...",
	Short: "decode hex bytes into integers",
	Long: `
The decode command concatenates its hex arguments into a single buffer and
decodes values of the wire form given by -form from the start of the buffer
to its end, displaying each value with its offset and size.

Hex arguments may carry a 0x prefix and may separate bytes with spaces or
colons.  A value cut short by the end of the buffer, or a varint longer than
64 bits, is an error.`,
	New: New,
}

func init() {
	root.Vlong.Add(Decode)
}

type Command struct {
	*root.Command
	form   cli.Form
	output outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.form = c.Flags.Form
	f.Var(&c.form, "form", "wire form (values: signed, unsigned, fixed32)")
	c.output.Format = c.Flags.Format
	c.output.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.PrintVersion(root.Stdout) {
		return nil
	}
	logger, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	buf, err := cli.ParseHex(args)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(buf) == 0 {
		return errors.New("decode: no bytes given")
	}
	result, err := decode(c.form, buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	for _, row := range result.Rows {
		logger.Debug("decoded", zap.Any("value", row.Value), zap.Int("offset", row.Offset), zap.Int("size", row.Size))
	}
	return c.output.Write(root.Stdout, result)
}

func decode(form cli.Form, buf []byte) (*outputflags.Result, error) {
	var rows []outputflags.Row
	var signed []int64
	for off := 0; off < len(buf); {
		var end int
		var err error
		if form == cli.FormFixed32 {
			end, err = cli.ScanFixed32(buf, off)
		} else {
			end, err = cli.ScanVarint(buf, off)
		}
		if err != nil {
			return nil, err
		}
		var value interface{}
		switch form {
		case cli.FormUnsigned:
			value, _ = vcode.Uvarint(buf, off)
		case cli.FormFixed32:
			value, _ = vcode.Fixed32(buf, off)
		default:
			signed = append(signed, 0)
			vcode.DecodeVarint(buf, off, signed, len(signed)-1)
			value = signed[len(signed)-1]
		}
		rows = append(rows, outputflags.Row{
			Value:  value,
			Offset: off,
			Size:   end - off,
			Hex:    hex.EncodeToString(buf[off:end]),
		})
		off = end
	}
	return &outputflags.Result{
		Form:  form.String(),
		Rows:  rows,
		Bytes: len(buf),
		Hex:   hex.EncodeToString(buf),
	}, nil
}
