package cmd

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	mdstruct "github.com/elseano/mdstruct/pkg"
	"github.com/elseano/mdstruct/pkg/renderer"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [FILENAME]",
		Short: "Displays a Markdown file in the terminal, with its outline",
		Args:  cobra.MaximumNArgs(1),
		RunE:  view,
	}
}

func view(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(args)
	if err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(
		// detect background color and pick either the default dark or light theme
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(flagCols),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorInternal, err)
	}

	out, err := r.Render(viewSource(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorInternal, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}

// viewSource is the document without front matter, preceded by its outline
// when it has one.
func viewSource(doc *mdstruct.Document) string {
	var b bytes.Buffer

	if toc := doc.TableOfContents(); toc != nil {
		if toc.HeadingText != "" {
			fmt.Fprintf(&b, "**%s**\n\n", toc.HeadingText)
		}
		b.WriteString(renderer.OutlineMarkdown(toc))
		b.WriteString("\n---\n\n")
	}

	b.Write(stripFrontMatter(doc.Source))

	return b.String()
}

var frontMatterFence = []byte("---")

func stripFrontMatter(source []byte) []byte {
	lines := bytes.SplitAfter(source, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontMatterFence) {
		return source
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		offset += len(line)
		if bytes.Equal(bytes.TrimSpace(line), frontMatterFence) {
			return source[offset:]
		}
	}

	return source
}
