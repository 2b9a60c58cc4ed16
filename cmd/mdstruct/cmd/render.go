package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/elseano/mdstruct/pkg/util"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [FILENAME]",
		Short: "Renders a Markdown file to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  render,
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write HTML here instead of stdout")

	return cmd
}

func render(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(args)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrorArg, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("%w: rendering %s: %v", ErrorInternal, doc.Filename, err)
	}

	util.Logger.Debug().Msgf("Rendered %s", doc.Filename)

	return w.Flush()
}
