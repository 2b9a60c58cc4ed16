package transformer

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	"github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	goldtext "github.com/yuin/goldmark/text"
)

type footnoteCounter struct {
	options options.Footnote
}

// NewFootnoteCounter returns a transformer which numbers every footnote
// reference per label and records the total on each definition.
func NewFootnoteCounter(opts options.Footnote) parser.ASTTransformer {
	return &footnoteCounter{options: opts}
}

func (a *footnoteCounter) Transform(doc *goldast.Document, reader goldtext.Reader, pc parser.Context) {
	counts := CountFootnotes(doc, a.options)

	util.Logger.Debug().Msgf("Counted references for %d footnote labels", len(counts))
}

// CountFootnotes assigns each reference its 1-based occurrence and id, then
// stores the total for each label on its definitions. Definitions nobody
// references get a count of 0. Returns the totals by label.
func CountFootnotes(root goldast.Node, opts options.Footnote) map[string]int {
	counts := map[string]int{}

	goldast.Walk(root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		if ref, ok := n.(*ast.FootnoteReference); ok {
			counts[ref.Label]++
			ref.Occurrence = counts[ref.Label]
			ast.SetAttr(ref, "id", opts.ReferenceID(ref.Label, ref.Occurrence))
		}

		return goldast.WalkContinue, nil
	})

	goldast.Walk(root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		if def, ok := n.(*ast.FootnoteDefinition); ok {
			def.Count = counts[def.Label]
			util.Logger.Trace().Msgf("Footnote %q referenced %d times", def.Label, def.Count)
		}

		return goldast.WalkContinue, nil
	})

	return counts
}
