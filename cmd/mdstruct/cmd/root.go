package cmd

import (
	"fmt"
	"os"

	"github.com/elseano/mdstruct/pkg/config"
	"github.com/elseano/mdstruct/pkg/util"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = NewRootCmd()

func RootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the command line and returns one of the Error sentinels, or
// nil.
func Execute(version string, gitCommit string) error {
	rootCmd.Version = version + " (" + gitCommit + ")"

	return handleError(rootCmd.ErrOrStderr(), rootCmd.Execute())
}

var flagOutput string

func NewRootCmd() *cobra.Command {
	settings = config.New()

	rootCmd := &cobra.Command{
		Use:           "mdstruct [filename]",
		Short:         "Render Markdown with a table of contents and footnotes",
		Long:          `mdstruct renders Markdown to HTML, adding an outline of the headings and linked, numbered footnotes.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				f, err := os.Create("debug.log")
				if err != nil {
					return fmt.Errorf("%w: %v", ErrorInternal, err)
				}
				util.RedirectLogger(f)
				util.SetLogLevel(zerolog.TraceLevel)
			}

			return nil
		},
		RunE: render,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrorArg, err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfig, "config", "c", "", "Config file (defaults to mdstruct.yaml)")
	flags.BoolVar(&flagDebug, "debug", false, "Write debugging info to debug.log")
	flags.IntVar(&flagCols, "cols", util.IntMin(util.GetConsoleWidth(), 120), "Number of columns in terminal output")
	flags.Bool("emoji", false, "Replace :emoji: codes")
	flags.Bool("highlight", false, "Highlight fenced code blocks")
	flags.BoolVar(&flagNoTOC, "no-toc", false, "Don't insert a table of contents")
	flags.BoolVar(&flagNoFootnotes, "no-footnotes", false, "Don't process footnotes")
	flags.Bool("nav", false, "Wrap the table of contents in <nav>")
	flags.String("toc-class", "", "Class of the table of contents")
	flags.Int("min-headings", 0, "Headings needed before a table of contents is inserted")

	bindFlag(flags, "extensions.emoji", "emoji")
	bindFlag(flags, "extensions.highlight", "highlight")
	bindFlag(flags, "toc.wrap_in_nav", "nav")
	bindFlag(flags, "toc.toc_class", "toc-class")
	bindFlag(flags, "toc.min_headings", "min-headings")

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write HTML here instead of stdout")

	rootCmd.AddCommand(newRenderCmd(), newASTCmd(), newTOCCmd(), newCheckCmd(), newViewCmd())

	return rootCmd
}
