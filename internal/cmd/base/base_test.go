package base

import (
	"flag"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestNewCommand_DefaultsToOsFs(t *testing.T) {
	c := NewCommand(hclog.NewNullLogger(), cli.NewMockUi(), nil)
	assert.IsType(t, &afero.OsFs{}, c.Fs)

	memFs := afero.NewMemMapFs()
	c = NewCommand(hclog.NewNullLogger(), cli.NewMockUi(), memFs)
	assert.Equal(t, memFs, c.Fs)
}

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("empty", flag.ContinueOnError))
	assert.Equal(t, "", f.Help())

	f = NewFlagSet(flag.NewFlagSet("with-flags", flag.ContinueOnError))
	f.String("out", "", "Output `path`")
	assert.Equal(t, "\n\nOptions:\n\n  -out=<path>\n      Output path", f.Help())
}
