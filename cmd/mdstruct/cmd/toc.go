package cmd

import (
	"fmt"

	"github.com/elseano/mdstruct/pkg/renderer"
	"github.com/spf13/cobra"
)

var flagMarkdown bool

func newTOCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toc [FILENAME]",
		Short: "Prints the outline of a Markdown file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  toc,
	}

	cmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Print the outline as a Markdown list")

	return cmd
}

func toc(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(args)
	if err != nil {
		return err
	}

	outline := doc.Outline()
	out := cmd.OutOrStdout()

	if outline.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No headings found.")
		return nil
	}

	if flagMarkdown {
		fmt.Fprint(out, renderer.OutlineMarkdown(outline))
		return nil
	}

	renderer.WriteOutline(out, outline, flagCols, colorProfile(out))

	return nil
}
