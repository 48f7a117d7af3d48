package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileMode string

const (
	// FileModeAppend appends to an existing log file.
	FileModeAppend FileMode = "append"
	// FileModeTruncate truncates an existing log file.
	FileModeTruncate FileMode = "truncate"
	// FileModeRotate rotates the log file once it grows past a few
	// megabytes.
	FileModeRotate FileMode = "rotate"
)

func (m *FileMode) Set(s string) error {
	switch mode := FileMode(s); mode {
	case "":
		*m = FileModeAppend
	case FileModeAppend, FileModeTruncate, FileModeRotate:
		*m = mode
	default:
		return fmt.Errorf("invalid file mode: %s", s)
	}
	return nil
}

func (m FileMode) String() string {
	return string(m)
}

func (m *FileMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// OpenFile returns a sink for the log at path.  The names stdout, stderr,
// and /dev/null are recognized.  Any other path is a file managed
// according to mode.
func OpenFile(path string, mode FileMode) (zapcore.WriteSyncer, error) {
	switch path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "/dev/null":
		return zapcore.AddSync(io.Discard), nil
	}
	switch mode {
	case FileModeRotate:
		return logrotate(path)
	case FileModeTruncate:
		return os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	default:
		return os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	}
}

func logrotate(path string) (zapcore.WriteSyncer, error) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, err
	}
	// lumberjack.Logger is safe for concurrent use so it needs no lock.
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}), nil
}
