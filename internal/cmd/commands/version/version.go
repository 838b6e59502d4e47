package version

import (
	"github.com/threa/phasereport/internal/cmd/base"
	"github.com/threa/phasereport/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: phase-report version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
