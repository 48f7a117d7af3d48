// Package logger builds the zap loggers used by the vlong commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Path string `yaml:"path"`
	// If Path is a file, Mode determines how the file is managed.
	// FileModeAppend is the default.
	Mode    FileMode      `yaml:"mode,omitempty"`
	Level   zapcore.Level `yaml:"level"`
	DevMode bool          `yaml:"devmode"`
}

func NewCore(conf Config) (zapcore.Core, error) {
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(jsonEncoder(), w, conf.Level), nil
}

// New returns a logger writing JSON entries at conf.Level or above to the
// sink named by conf.Path.
func New(conf Config) (*zap.Logger, error) {
	core, err := NewCore(conf)
	if err != nil {
		return nil, err
	}
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}

func jsonEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.CallerKey = ""
	return zapcore.NewJSONEncoder(conf)
}
