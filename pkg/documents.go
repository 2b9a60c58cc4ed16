package mdstruct

import (
	"io"

	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/config"
	"github.com/elseano/mdstruct/pkg/transformer"
	"github.com/yuin/goldmark"
	goldast "github.com/yuin/goldmark/ast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Document struct {
	Filename string
	Root     goldast.Node
	Source   []byte
	Goldmark goldmark.Markdown
	// Meta is the front matter, or nil.
	Meta map[string]interface{}

	config *config.Config
}

func (d *Document) Render(outputStream io.Writer) error {
	return d.Goldmark.Renderer().Render(outputStream, d.Source, d.Root)
}

// TableOfContents returns the outline inserted into the document, or nil
// when none was.
func (d *Document) TableOfContents() *ast.TableOfContents {
	if toc, ok := ast.FindNode(d.Root, func(n goldast.Node) bool {
		return n.Kind() == ast.KindTableOfContents
	}).(*ast.TableOfContents); ok {
		return toc
	}

	return nil
}

// Outline builds the outline of the document's headings whether or not the
// document is long enough to have one inserted.
func (d *Document) Outline() *ast.TableOfContents {
	toc, _ := transformer.BuildTOC(transformer.CollectHeadings(d.Root, d.Source), d.config.TOC)
	return toc
}

// FootnoteStatus summarises one footnote label.
type FootnoteStatus struct {
	Label       string
	References  int
	Definitions int
}

// Undefined reports a label which is referenced but never defined.
func (s FootnoteStatus) Undefined() bool {
	return s.References > 0 && s.Definitions == 0
}

// Unreferenced reports a definition nothing links to.
func (s FootnoteStatus) Unreferenced() bool {
	return s.Definitions > 0 && s.References == 0
}

// Duplicated reports a label defined more than once.
func (s FootnoteStatus) Duplicated() bool {
	return s.Definitions > 1
}

func (s FootnoteStatus) OK() bool {
	return !s.Undefined() && !s.Unreferenced() && !s.Duplicated()
}

// Footnotes returns the status of every footnote label, sorted by label.
func (d *Document) Footnotes() []FootnoteStatus {
	byLabel := map[string]*FootnoteStatus{}
	get := func(label string) *FootnoteStatus {
		if s, ok := byLabel[label]; ok {
			return s
		}
		s := &FootnoteStatus{Label: label}
		byLabel[label] = s
		return s
	}

	goldast.Walk(d.Root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FootnoteReference:
			get(node.Label).References++
		case *ast.FootnoteDefinition:
			get(node.Label).Definitions++
		}

		return goldast.WalkContinue, nil
	})

	labels := maps.Keys(byLabel)
	slices.Sort(labels)

	result := make([]FootnoteStatus, 0, len(labels))
	for _, label := range labels {
		result = append(result, *byLabel[label])
	}

	return result
}
