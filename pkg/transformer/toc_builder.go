package transformer

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	"github.com/elseano/mdstruct/pkg/util"
	meta "github.com/yuin/goldmark-meta"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	goldtext "github.com/yuin/goldmark/text"
)

// Heading is a heading found while building the outline.
type Heading struct {
	Level int
	Title string
	Slug  string
	Node  *goldast.Heading
}

type tocBuilder struct {
	options options.TOC
}

// NewTOCBuilder returns a transformer which inserts a TableOfContents ahead
// of the first heading that takes part in the outline.
func NewTOCBuilder(opts options.TOC) parser.ASTTransformer {
	return &tocBuilder{options: opts}
}

func (a *tocBuilder) Transform(doc *goldast.Document, reader goldtext.Reader, pc parser.Context) {
	opts, enabled := applyFrontMatter(a.options, meta.Get(pc))
	if !enabled {
		util.Logger.Debug().Msg("Outline disabled by front matter")
		return
	}

	headings := CollectHeadings(doc, reader.Source())
	InsertTOC(doc, headings, opts)
}

// applyFrontMatter overrides options from the document's metadata, if any.
func applyFrontMatter(opts options.TOC, data map[string]interface{}) (options.TOC, bool) {
	if data == nil {
		return opts, true
	}

	if enabled, ok := data["toc"].(bool); ok && !enabled {
		return opts, false
	}

	if text, ok := data["toc_heading"].(string); ok {
		opts.HeadingText = text
	}

	return opts, true
}

// CollectHeadings returns every heading below root in document order. A
// heading without an id attribute is given one derived from its title; an
// existing id is used as the slug unchanged.
func CollectHeadings(root goldast.Node, source []byte) []Heading {
	headings := []Heading{}

	goldast.Walk(root, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}

		h, ok := n.(*goldast.Heading)
		if !ok {
			return goldast.WalkContinue, nil
		}

		title := util.CollectText(h, source)

		if !ast.HasAttr(h, "id") {
			ast.SetAttr(h, "id", util.Slugify(title))
		}

		headings = append(headings, Heading{Level: h.Level, Title: title, Slug: ast.GetAttr(h, "id").String, Node: h})

		return goldast.WalkSkipChildren, nil
	})

	return headings
}

// Level of the outline heading when only its text is configured.
const defaultHeadingLevel = 2

// BuildTOC assembles the outline from the headings which take part in it.
// first is the earliest of those headings, or nil if there are none.
func BuildTOC(headings []Heading, opts options.TOC) (toc *ast.TableOfContents, first *goldast.Heading) {
	toc = ast.NewTableOfContents()
	toc.Class = opts.Class
	toc.WrapInNav = opts.WrapInNav
	toc.HeadingLevel = opts.HeadingLevel
	toc.HeadingText = opts.HeadingText
	if toc.HeadingText != "" && toc.HeadingLevel == 0 {
		toc.HeadingLevel = defaultHeadingLevel
	}

	for _, h := range headings {
		level, ok := opts.Level(h.Level)
		if !ok {
			continue
		}

		if first == nil {
			first = h.Node
		}

		toc.Push(ast.NewTOCItem(h.Slug, h.Title), level)
	}

	return toc, first
}

// InsertTOC builds the outline and places it in front of the top-level
// block holding the first qualifying heading. Nothing is inserted when
// fewer than opts.MinHeadings headings qualify.
func InsertTOC(doc goldast.Node, headings []Heading, opts options.TOC) *ast.TableOfContents {
	toc, first := BuildTOC(headings, opts)

	if first == nil || toc.Len() < opts.MinHeadings {
		util.Logger.Debug().Msgf("Skipping outline, %d qualifying headings", toc.Len())
		return nil
	}

	anchor := ast.TopLevel(first)
	if anchor.Parent() != doc {
		return nil
	}

	InsertBefore(anchor, toc)
	util.Logger.Debug().Msgf("Inserted outline with %d entries", toc.Len())

	return toc
}
