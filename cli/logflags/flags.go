// Package logflags registers the -log.* flags shared by the vlong
// commands and opens the logger they describe.
package logflags

import (
	"flag"

	"github.com/brimdata/vlong/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the name given to loggers returned by Open.
const Name = "vlong"

// Default is the configuration in effect before flags or a config file
// change it.  Warnings only, so command output on stdout is not mixed with
// per-value debug entries unless asked for.
var Default = logger.Config{
	Path:  "stderr",
	Mode:  logger.FileModeAppend,
	Level: zapcore.WarnLevel,
}

type Flags struct {
	Config logger.Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Config = Default
	fs.Var(&f.Config.Level, "log.level", "minimum level of log entries (values: debug, info, warn, error)")
	fs.StringVar(&f.Config.Path, "log.path", f.Config.Path, "log destination (values: stderr, stdout, /dev/null, file path)")
	fs.Var(&f.Config.Mode, "log.filemode", "how a log file is opened (values: append, truncate, rotate)")
	fs.BoolVar(&f.Config.DevMode, "log.devmode", f.Config.DevMode, "panic on dpanic level entries")
}

// Open returns the configured logger and a function that flushes it.
func (f *Flags) Open() (*zap.Logger, func(), error) {
	l, err := logger.New(f.Config)
	if err != nil {
		return nil, nil, err
	}
	l = l.Named(Name)
	// Sync fails on some terminals; buffered entries are written anyway.
	return l, func() { _ = l.Sync() }, nil
}
