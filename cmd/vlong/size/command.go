package size

import (
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

var Size = &charm.Spec{
	Name:  "size",
	Usage: "size [-form signed|unsigned|fixed32] [-f format] integer...",
	Short: "display encoded sizes without encoding",
	Long: `
The size command computes the number of bytes each integer argument needs in
the wire form given by -form, along with the offset it would be written at
if the arguments were packed back to back.  This is the capacity a writer
must reserve before encoding.`,
	New: New,
}

func init() {
	root.Vlong.Add(Size)
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
		return errors.New("size: no integers given")
	}
	result, err := sizes(c.form, args)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	logger.Debug("sized", zap.String("form", result.Form), zap.Int("values", len(result.Rows)), zap.Int("bytes", result.Bytes))
	return c.output.Write(root.Stdout, result)
}

func sizes(form cli.Form, args []string) (*outputflags.Result, error) {
	result := &outputflags.Result{Form: form.String()}
	add := func(v interface{}, size int) {
		result.Rows = append(result.Rows, outputflags.Row{Value: v, Offset: result.Bytes, Size: size})
		result.Bytes += size
	}
	if form == cli.FormFixed32 {
		vals, err := cli.ParseInts[int32](args, 32)
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			add(v, vcode.Fixed32Len)
		}
		return result, nil
	}
	vals, err := cli.ParseInts[int64](args, 64)
	if err != nil {
		return nil, err
	}
	if form == cli.FormUnsigned {
		if err := cli.CheckUnsigned(vals); err != nil {
			return nil, err
		}
		for _, v := range vals {
			add(v, vcode.SizeOfUvarint(uint64(v)))
		}
		return result, nil
	}
	for _, v := range vals {
		add(v, vcode.SizeOfVarint(v))
	}
	return result, nil
}
