package transformer

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	"github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	goldtext "github.com/yuin/goldmark/text"
)

// placeholder reserves the position of a definition while a run is being
// grouped. None survive GroupFootnotes.
type placeholder struct {
	goldast.BaseBlock
}

var kindPlaceholder = goldast.NewNodeKind("FootnotePlaceholder")

func (b *placeholder) Kind() goldast.NodeKind {
	return kindPlaceholder
}

func (b *placeholder) Dump(source []byte, level int) {
	goldast.DumpHelper(b, source, level, nil, nil)
}

type footnoteGrouper struct {
	options options.Footnote
}

// NewFootnoteGrouper returns a transformer which gathers each run of
// adjacent footnote definitions into a single FootnoteList. It must run
// after the counter.
func NewFootnoteGrouper(opts options.Footnote) parser.ASTTransformer {
	return &footnoteGrouper{options: opts}
}

func (a *footnoteGrouper) Transform(doc *goldast.Document, reader goldtext.Reader, pc parser.Context) {
	GroupFootnotes(doc, a.options)
}

// GroupFootnotes groups definitions among the children of every container
// block below root. Lists are never regrouped, so running it twice changes
// nothing.
func GroupFootnotes(root goldast.Node, opts options.Footnote) {
	goldast.Walk(root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.FootnoteList:
			return goldast.WalkContinue, nil
		}

		if n.Type() == goldast.TypeInline {
			return goldast.WalkSkipChildren, nil
		}

		if n.HasChildren() {
			groupChildren(n, opts)
		}

		return goldast.WalkContinue, nil
	})
}

func groupChildren(parent goldast.Node, opts options.Footnote) {
	lists := map[int]*ast.FootnoteList{}
	collected := map[int][]*ast.FootnoteDefinition{}
	order := []int{}

	// Mark. open is the index of the most recent sibling which is not a
	// definition, so every member of a run shares it.
	open := 0
	index := 0
	for child := parent.FirstChild(); child != nil; index++ {
		next := child.NextSibling()

		def, ok := child.(*ast.FootnoteDefinition)
		if !ok {
			open = index
			child = next
			continue
		}

		if _, exists := lists[open]; !exists {
			list := ast.NewFootnoteList(open)
			ast.SetAttr(list, "class", opts.ListClass)
			lists[open] = list
			order = append(order, open)
			Replace(def, list)
		} else {
			Replace(def, &placeholder{})
		}

		collected[open] = append(collected[open], def)
		child = next
	}

	if len(order) == 0 {
		return
	}

	// Compact.
	for child := parent.FirstChild(); child != nil; {
		if _, ok := child.(*placeholder); ok {
			child = Remove(child)
			continue
		}
		child = child.NextSibling()
	}

	// Merge.
	for _, group := range order {
		list := lists[group]
		for _, def := range collected[group] {
			AppendChild(list, def)
		}

		util.Logger.Trace().Msgf("Grouped %d footnote definitions", list.ChildCount())
	}
}
