package check

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
	return "Check an existing phase 8 verification report"
}

func (c *Command) Help() string {
	return `Usage: phase-report check

  Read ` + report.FileName + ` from the current directory and confirm it
  matches the verification report line for line and that its frontmatter
  decodes. Every difference found is reported.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("check", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

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

	logger.Debug("checking verification report", "path", report.FileName)

	if err := report.Verify(c.Fs, report.FileName, report.VerificationReport()); err != nil {
		ui.Error(fmt.Sprintf("verification report check failed: %v", err))
		return 1
	}

	ui.Output(report.VerifiedMessage)
	return 0
}
