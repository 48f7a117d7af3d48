// Package cli holds the flags and argument handling shared by the vlong
// commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/brimdata/vlong/cli/logflags"
	"github.com/brimdata/vlong/cli/outputflags"
	"github.com/brimdata/vlong/pkg/logger"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Version is set via the Go linker.
var Version string

// Config is the layout of the file named by -config.
type Config struct {
	Log    logger.Config      `yaml:"log"`
	Format outputflags.Format `yaml:"format"`
	Form   Form               `yaml:"form"`
}

type Flags struct {
	Log         logflags.Flags
	Format      outputflags.Format
	Form        Form
	showVersion bool
}

// SetFlags registers the global flags.  Flags following -config on the
// command line override values from the file.
func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	f.Log.SetFlags(fs)
	f.Format = outputflags.FormatText
	f.Form = FormSigned
	fs.Func("config", "path of vlong yaml config file", f.LoadConfig)
}

// LoadConfig merges the YAML file at path into the receiver.  Keys absent
// from the file leave the current values alone.
func (f *Flags) LoadConfig(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	conf := Config{
		Log:    f.Log.Config,
		Format: f.Format,
		Form:   f.Form,
	}
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f.Log.Config = conf.Log
	f.Format = conf.Format
	f.Form = conf.Form
	return nil
}

// PrintVersion writes the version to w and returns true if -version was
// given.  The command should then do nothing else.
func (f *Flags) PrintVersion(w io.Writer) bool {
	if !f.showVersion {
		return false
	}
	fmt.Fprintf(w, "Version: %s\n", version())
	return true
}

// Init opens the logger.  The returned cleanup function flushes it.
func (f *Flags) Init() (*zap.Logger, func(), error) {
	return f.Log.Open()
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		// This is "(devel)" for binaries not built by
		// "go install PACKAGE@VERSION".
		return info.Main.Version
	}
	return "unknown"
}
