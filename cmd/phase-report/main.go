package main

import (
	"os"

	"github.com/threa/phasereport/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
