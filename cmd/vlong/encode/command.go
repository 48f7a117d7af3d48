package encode

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

var Encode = &charm.Spec{
	Name:  "encode",
	Usage: "encode [-form signed|unsigned|fixed32] [-f format] integer...",
	Short: "encode integers and display their bytes",
	Long: `
The encode command packs its integer arguments back to back into a single
buffer using the wire form given by -form and displays, for each value, the
offset and size of its encoding along with the bytes in hex.

Integers may be written in decimal or with a 0x, 0o, or 0b prefix.  The
unsigned form accepts only non-negative values and the fixed32 form accepts
only values that fit in 32 bits.`,
	New: New,
}

func init() {
	root.Vlong.Add(Encode)
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
	if len(args) == 0 {
		return errors.New("encode: no integers given")
	}
	var result *outputflags.Result
	switch c.form {
	case cli.FormUnsigned:
		result, err = encodeUnsigned(args)
	case cli.FormFixed32:
		result, err = encodeFixed32(args)
	default:
		result, err = encodeSigned(args)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	for _, row := range result.Rows {
		logger.Debug("encoded", zap.Any("value", row.Value), zap.Int("offset", row.Offset), zap.Int("size", row.Size))
	}
	return c.output.Write(root.Stdout, result)
}

func newResult(form cli.Form, buf []byte, vals []interface{}, ends []int) *outputflags.Result {
	rows := make([]outputflags.Row, 0, len(vals))
	var off int
	for k, v := range vals {
		rows = append(rows, outputflags.Row{
			Value:  v,
			Offset: off,
			Size:   ends[k] - off,
			Hex:    hex.EncodeToString(buf[off:ends[k]]),
		})
		off = ends[k]
	}
	return &outputflags.Result{
		Form:  form.String(),
		Rows:  rows,
		Bytes: len(buf),
		Hex:   hex.EncodeToString(buf),
	}
}

func encodeSigned(args []string) (*outputflags.Result, error) {
	vals, err := cli.ParseInts[int64](args, 64)
	if err != nil {
		return nil, err
	}
	var size int
	for _, v := range vals {
		size += vcode.SizeOfVarint(v)
	}
	buf := make([]byte, size)
	ends := make([]int, 0, len(vals))
	values := make([]interface{}, 0, len(vals))
	var off int
	for _, v := range vals {
		off = vcode.PutVarint(buf, off, v)
		ends = append(ends, off)
		values = append(values, v)
	}
	return newResult(cli.FormSigned, buf, values, ends), nil
}

func encodeUnsigned(args []string) (*outputflags.Result, error) {
	vals, err := cli.ParseInts[int64](args, 64)
	if err != nil {
		return nil, err
	}
	if err := cli.CheckUnsigned(vals); err != nil {
		return nil, err
	}
	uvals := make([]uint64, 0, len(vals))
	ends := make([]int, 0, len(vals))
	values := make([]interface{}, 0, len(vals))
	var size int
	for _, v := range vals {
		uvals = append(uvals, uint64(v))
		size += vcode.SizeOfUvarint(uint64(v))
		ends = append(ends, size)
		values = append(values, v)
	}
	buf := make([]byte, size)
	if end := vcode.PutUvarints(buf, 0, uvals, len(uvals)); end != size {
		return nil, fmt.Errorf("unsigned encoding is %d bytes, expected %d", end, size)
	}
	return newResult(cli.FormUnsigned, buf, values, ends), nil
}

func encodeFixed32(args []string) (*outputflags.Result, error) {
	vals, err := cli.ParseInts[int32](args, 32)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(vals)*vcode.Fixed32Len)
	ends := make([]int, 0, len(vals))
	values := make([]interface{}, 0, len(vals))
	var off int
	for _, v := range vals {
		off = vcode.PutFixed32(buf, off, v)
		ends = append(ends, off)
		values = append(values, v)
	}
	return newResult(cli.FormFixed32, buf, values, ends), nil
}
