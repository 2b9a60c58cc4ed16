package cmd

import (
	"fmt"
	"io"
	"os"

	shared "github.com/elseano/mdstruct/cmd"
	mdstruct "github.com/elseano/mdstruct/pkg"
	"github.com/elseano/mdstruct/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	flagConfig      string
	flagDebug       bool
	flagCols        int
	flagNoTOC       bool
	flagNoFootnotes bool
)

// settings holds the configuration of the command currently executing.
var settings *viper.Viper

// loadDocument resolves the file from args, loads configuration and parses
// the document.
func loadDocument(args []string) (*mdstruct.Document, *config.Config, error) {
	fileArg := ""
	if len(args) > 0 {
		fileArg = args[0]
	}

	file := shared.MarkdownFile(fileArg)
	if file == "" {
		return nil, nil, fmt.Errorf("%w: no file given and no README.md found", ErrorArg)
	}

	cfg, err := config.Load(settings, flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrorInput, err)
	}

	if flagNoTOC {
		cfg.Extensions.TOC = false
	}
	if flagNoFootnotes {
		cfg.Extensions.Footnotes = false
	}

	doc, err := mdstruct.Load(file, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrorInput, err)
	}

	return doc, cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// colorProfile returns the profile to style output for w with. Anything
// other than a terminal gets plain text.
func colorProfile(w io.Writer) termenv.Profile {
	if !isTerminal(w) {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}

// bindFlag lets a flag override the config key. Unset flags leave the
// config alone.
func bindFlag(flags *pflag.FlagSet, key, flag string) {
	if err := settings.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(err)
	}
}
