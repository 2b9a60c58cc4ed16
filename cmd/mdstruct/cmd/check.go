package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mdstruct "github.com/elseano/mdstruct/pkg"
	"github.com/fatih/color"
	"github.com/kyokomi/emoji"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	goldast "github.com/yuin/goldmark/ast"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILENAME]",
		Short: "Checks footnotes for missing or unused definitions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkExec,
	}
}

var emojiCode = regexp.MustCompile(`:[a-z0-9_+\-]+:`)

func checkExec(cmd *cobra.Command, args []string) error {
	doc, cfg, err := loadDocument(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.NoColor = color.NoColor || !isTerminal(out)

	good := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Footnote", "References", "Definitions", "Status"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)

	problems := 0
	for _, status := range doc.Footnotes() {
		state := good("ok")
		switch {
		case status.Undefined():
			state = bad("undefined")
		case status.Duplicated():
			state = bad("defined twice")
		case status.Unreferenced():
			state = warn("unreferenced")
		}

		if !status.OK() {
			problems++
		}

		table.Append([]string{status.Label, strconv.Itoa(status.References), strconv.Itoa(status.Definitions), state})
	}

	if cfg.Extensions.Emoji {
		for _, code := range unknownEmoji(doc) {
			problems++
			table.Append([]string{code, "", "", bad("unknown emoji")})
		}
	}

	if table.NumLines() == 0 {
		fmt.Fprintln(out, "No footnotes found.")
	} else {
		table.Render()
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problems in %s", ErrorCheck, problems, doc.Filename)
	}

	return nil
}

// unknownEmoji returns :codes: left in the text which no emoji matches.
// Known codes have already been replaced by the emoji extension. Adjacent
// text nodes are joined first, as the inline parsers split text at
// delimiters like '_'.
func unknownEmoji(doc *mdstruct.Document) []string {
	var unknown []string
	codes := emoji.CodeMap()

	scan := func(run *strings.Builder) {
		for _, code := range emojiCode.FindAllString(run.String(), -1) {
			if _, ok := codes[code]; !ok {
				unknown = append(unknown, code)
			}
		}
		run.Reset()
	}

	goldast.Walk(doc.Root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		if n.Kind() == goldast.KindCodeSpan {
			return goldast.WalkSkipChildren, nil
		}

		var run strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*goldast.Text); ok {
				run.Write(t.Segment.Value(doc.Source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					run.WriteByte('\n')
				}
				continue
			}
			scan(&run)
		}
		scan(&run)

		return goldast.WalkContinue, nil
	})

	return unknown
}
