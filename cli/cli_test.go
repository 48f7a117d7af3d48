package cli

import (
	"bytes"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/vlong/cli/outputflags"
	"github.com/brimdata/vlong/pkg/logger"
	"github.com/brimdata/vlong/vcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func TestParseInts(t *testing.T) {
	vals, err := ParseInts[int64]([]string{"0", "-1", "0x7f", "1_000", "-9223372036854775808"}, 64)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -1, 127, 1000, -9223372036854775808}, vals)

	fixed, err := ParseInts[int32]([]string{"0x12345678", "-2147483648"}, 32)
	require.NoError(t, err)
	assert.Equal(t, []int32{0x12345678, -2147483648}, fixed)
}

func TestParseIntsErrors(t *testing.T) {
	vals, err := ParseInts[int32]([]string{"1", "x", "4294967296", "2"}, 32)
	assert.Equal(t, []int32{1, 2}, vals)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], `bad integer "x": invalid syntax`)
	assert.EqualError(t, errs[1], `bad integer "4294967296": value out of range`)
}

func TestCheckUnsigned(t *testing.T) {
	require.NoError(t, CheckUnsigned([]int64{0, 1, math.MaxInt64}))
	errs := multierr.Errors(CheckUnsigned([]int64{-1, 2, math.MinInt64}))
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "negative value -1 not allowed in unsigned form")
	assert.EqualError(t, errs[1], "negative value -9223372036854775808 not allowed in unsigned form")
}

func TestParseHex(t *testing.T) {
	buf, err := ParseHex([]string{"0x01", "ac 02", "FF:7f"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xac, 0x02, 0xff, 0x7f}, buf)

	_, err = ParseHex([]string{"abc", "zz", "00"})
	assert.Len(t, multierr.Errors(err), 2)
}

func TestScanVarint(t *testing.T) {
	buf := make([]byte, 2*vcode.MaxVarintLen64)
	end := vcode.PutUvarint(buf, 0, 1<<63)
	end = vcode.PutUvarint(buf, end, 300)
	off, err := ScanVarint(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, vcode.MaxVarintLen64, off)
	off, err = ScanVarint(buf, off)
	require.NoError(t, err)
	assert.Equal(t, end, off)

	_, err = ScanVarint([]byte{0x80, 0x80}, 0)
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = ScanVarint([]byte{0x01}, 1)
	assert.ErrorIs(t, err, ErrTruncated)

	long := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	_, err = ScanVarint(long, 0)
	assert.ErrorIs(t, err, ErrOverflow)
	long[9] = 0x81
	_, err = ScanVarint(append(long, 0), 0)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestScanFixed32(t *testing.T) {
	off, err := ScanFixed32(make([]byte, 5), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, off)
	_, err = ScanFixed32(make([]byte, 5), 2)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestForm(t *testing.T) {
	var f Form
	require.NoError(t, f.Set("Fixed32"))
	assert.Equal(t, FormFixed32, f)
	assert.Error(t, f.Set("double"))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlong.yaml")
	conf := `
log:
  level: debug
  mode: truncate
format: yaml
form: unsigned
`
	require.NoError(t, os.WriteFile(path, []byte(conf), 0644))
	var f Flags
	fs := flag.NewFlagSet("vlong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-log.path", "/dev/null"}))
	assert.Equal(t, zapcore.DebugLevel, f.Log.Config.Level)
	assert.Equal(t, logger.FileModeTruncate, f.Log.Config.Mode)
	assert.Equal(t, "/dev/null", f.Log.Config.Path)
	assert.Equal(t, outputflags.FormatYAML, f.Format)
	assert.Equal(t, FormUnsigned, f.Form)

	l, cleanup, err := f.Init()
	require.NoError(t, err)
	l.Debug("ok")
	cleanup()
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	var f Flags
	f.SetFlags(flag.NewFlagSet("vlong", flag.ContinueOnError))
	assert.Error(t, f.LoadConfig(filepath.Join(dir, "missing.yaml")))
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form: double\n"), 0644))
	assert.Error(t, f.LoadConfig(path))
	assert.Equal(t, FormSigned, f.Form)
}

func TestPrintVersion(t *testing.T) {
	saved := Version
	Version = "v1.2.3"
	defer func() { Version = saved }()
	var f Flags
	fs := flag.NewFlagSet("vlong", flag.ContinueOnError)
	f.SetFlags(fs)
	var buf bytes.Buffer
	assert.False(t, f.PrintVersion(&buf))
	assert.Zero(t, buf.Len())
	require.NoError(t, fs.Parse([]string{"-version"}))
	assert.True(t, f.PrintVersion(&buf))
	assert.Equal(t, "Version: v1.2.3\n", buf.String())
}
