package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const outlineIndent = 2

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// WriteOutline prints the outline as an indented tree for a terminal. Titles
// are wrapped to width. Use termenv.Ascii for uncoloured output.
func WriteOutline(w io.Writer, toc *ast.TableOfContents, width int, profile termenv.Profile) {
	toc.WalkTOC(func(item *ast.TOCItem, depth int) {
		margin := depth * outlineIndent

		title := termenv.String(item.Title).Foreground(profile.Color("12"))
		if depth == 0 && profile != termenv.Ascii {
			title = title.Bold()
		}
		anchor := termenv.String("#" + item.Slug).Foreground(profile.Color("8"))

		line := title.String() + " " + anchor.String()
		if width > margin {
			line = wordwrap.String(line, width-margin)
		}

		fmt.Fprintln(w, indent.String(line, uint(margin)))
	})
}

// OutlineMarkdown writes the outline back out as a nested Markdown list of
// links.
func OutlineMarkdown(toc *ast.TableOfContents) string {
	var b strings.Builder

	toc.WalkTOC(func(item *ast.TOCItem, depth int) {
		b.WriteString(strings.Repeat(" ", depth*outlineIndent))
		fmt.Fprintf(&b, "- [%s](#%s)\n", linkTextEscaper.Replace(item.Title), item.Slug)
	})

	return b.String()
}
