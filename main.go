package main

import (
	"io"
	"os"

	"github.com/elseano/mdstruct/cmd/mdstruct/cmd"
	"github.com/elseano/mdstruct/pkg/util"
)

var GitCommit string
var Version string

func main() {
	util.RedirectLogger(io.Discard)

	switch cmd.Execute(Version, GitCommit) {
	case cmd.ErrorArg:
		os.Exit(128)
	case cmd.ErrorInput:
		os.Exit(127)
	case cmd.ErrorInternal:
		os.Exit(129)
	case cmd.ErrorCheck:
		os.Exit(1)
	case nil:
		os.Exit(0)
	}

	os.Exit(3)
}
