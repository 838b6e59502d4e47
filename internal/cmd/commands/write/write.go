package write

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/threa/phasereport/internal/cmd/base"
	"github.com/threa/phasereport/pkg/report"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Write the phase 8 verification report"
}

func (c *Command) Help() string {
	return `Usage: phase-report write

  Write ` + report.FileName + ` to the current directory, replacing any
  existing file, and print a confirmation. This is the default command.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("write", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cli.RunResultHelp
		}
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() > 0 {
		ui.Error(fmt.Sprintf("unexpected arguments: %s", strings.Join(flags.Args(), " ")))
		return 1
	}

	doc := report.VerificationReport()
	logger.Debug("writing verification report",
		"path", report.FileName,
		"lines", len(doc),
	)

	if err := report.Write(c.Fs, report.FileName, doc); err != nil {
		ui.Error(fmt.Sprintf("error writing verification report: %v", err))
		return 1
	}

	ui.Output(report.WrittenMessage)
	return 0
}
