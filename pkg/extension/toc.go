package extension

import (
	"github.com/elseano/mdstruct/pkg/options"
	mdrenderer "github.com/elseano/mdstruct/pkg/renderer"
	"github.com/elseano/mdstruct/pkg/transformer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type TOCOption func(*options.TOC)

// WithTitles includes level-1 headings in the outline. With asH2 they nest
// like level-2 headings.
func WithTitles(asH2 bool) TOCOption {
	return func(o *options.TOC) {
		o.AllowTitles = true
		o.TreatTitleAsH2 = asH2
	}
}

func WithTOCClass(class string) TOCOption {
	return func(o *options.TOC) {
		o.Class = class
	}
}

// WithNav wraps the outline in a <nav>, which takes the class.
func WithNav() TOCOption {
	return func(o *options.TOC) {
		o.WrapInNav = true
	}
}

func WithTOCHeading(level int, text string) TOCOption {
	return func(o *options.TOC) {
		o.HeadingLevel = level
		o.HeadingText = text
	}
}

func WithMinHeadings(n int) TOCOption {
	return func(o *options.TOC) {
		o.MinHeadings = n
	}
}

func WithTOCOptions(opts options.TOC) TOCOption {
	return func(o *options.TOC) {
		*o = opts
	}
}

type tableOfContents struct {
	options options.TOC
}

// TableOfContents is the outline extension with default settings.
var TableOfContents = NewTableOfContents()

func NewTableOfContents(opts ...TOCOption) goldmark.Extender {
	e := &tableOfContents{options: options.DefaultTOC()}
	for _, opt := range opts {
		opt(&e.options)
	}

	return e
}

func (e *tableOfContents) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(transformer.NewTOCBuilder(e.options), priorityTOC),
		),
	)

	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(mdrenderer.NewTOCRenderer(), priorityRenderer),
		),
	)
}
