package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/threa/phasereport/internal/cmd/base"
	"github.com/threa/phasereport/internal/cmd/commands/check"
	"github.com/threa/phasereport/internal/cmd/commands/version"
	"github.com/threa/phasereport/internal/cmd/commands/write"
)

// Commands is the mapping of all available phase-report commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui, fs afero.Fs) {
	b := base.NewCommand(log, ui, fs)

	Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return &check.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
		"write": func() (cli.Command, error) {
			return &write.Command{Command: b}, nil
		},
	}
}
