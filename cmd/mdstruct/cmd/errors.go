package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

var (
	ErrorInternal = errors.New("Internal mdstruct error")
	ErrorArg      = errors.New("Invalid arguments")
	ErrorInput    = errors.New("Cannot read input")
	ErrorCheck    = errors.New("Document has problems")
)

// handleError reports err on dest and returns the sentinel it falls under.
func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	au := aurora.NewAurora(isTerminal(dest))

	if errors.Is(err, ErrorCheck) {
		fmt.Fprintf(dest, "\n%s - %s\n", au.Yellow("Check failed"), err)
		return ErrorCheck
	}

	fmt.Fprintf(dest, "%s: %s\n", au.Red("Error"), err)

	for _, sentinel := range []error{ErrorArg, ErrorInput} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return ErrorInternal
}
