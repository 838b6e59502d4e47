package base

import (
	"bytes"
	"flag"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command carries the dependencies shared by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem reports are written to and read from.
	Fs afero.Fs
}

// NewCommand returns a Command. A nil fs means the operating system's
// filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui, fs afero.Fs) *Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  fs,
	}
}

// FlagSet wraps a flag.FlagSet so commands can render their flags in help
// output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that does not write usage output on its own.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help returns the flag help text, or an empty string if there are no flags.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		buf.WriteString("  -" + fl.Name)
		if name != "" {
			buf.WriteString("=<" + name + ">")
		}
		buf.WriteString("\n      " + usage + "\n\n")
	})
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + strings.TrimRight(buf.String(), "\n")
}
