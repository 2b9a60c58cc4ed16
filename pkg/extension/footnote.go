// Package extension bundles the parsers, transformers and renderers into
// goldmark extenders.
package extension

import (
	"github.com/elseano/mdstruct/pkg/options"
	mdparser "github.com/elseano/mdstruct/pkg/parser"
	mdrenderer "github.com/elseano/mdstruct/pkg/renderer"
	"github.com/elseano/mdstruct/pkg/transformer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Priorities. Lower values run first; the definition parser has to beat the
// paragraph parser (1000) and the reference parser the link parser (200).
const (
	priorityDefinitionParser = 999
	priorityReferenceParser  = 101
	priorityMathParser       = 500
	priorityCounter          = 100
	priorityGrouper          = 200
	priorityTOC              = 300
	priorityRenderer         = 500
)

type FootnoteOption func(*options.Footnote)

func WithIDPrefixes(definition, reference string) FootnoteOption {
	return func(o *options.Footnote) {
		o.DefIDPrefix = definition
		o.RefIDPrefix = reference
	}
}

// WithBackRef sets the unescaped text and class of back-links.
func WithBackRef(text, class string) FootnoteOption {
	return func(o *options.Footnote) {
		o.BackRefText = text
		o.BackRefClass = class
	}
}

func WithFootnoteClasses(definition, reference, list string) FootnoteOption {
	return func(o *options.Footnote) {
		o.DefClass = definition
		o.RefClass = reference
		o.ListClass = list
	}
}

// WithFootnoteOptions replaces every footnote setting at once.
func WithFootnoteOptions(opts options.Footnote) FootnoteOption {
	return func(o *options.Footnote) {
		*o = opts
	}
}

type footnotes struct {
	options options.Footnote
}

// Footnotes is the footnote extension with default settings.
var Footnotes = NewFootnotes()

func NewFootnotes(opts ...FootnoteOption) goldmark.Extender {
	e := &footnotes{options: options.DefaultFootnote()}
	for _, opt := range opts {
		opt(&e.options)
	}

	return e
}

func (e *footnotes) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(mdparser.NewFootnoteDefinitionParser(e.options), priorityDefinitionParser),
		),
		parser.WithInlineParsers(
			util.Prioritized(mdparser.NewFootnoteReferenceParser(e.options), priorityReferenceParser),
		),
		parser.WithASTTransformers(
			util.Prioritized(transformer.NewFootnoteCounter(e.options), priorityCounter),
			util.Prioritized(transformer.NewFootnoteGrouper(e.options), priorityGrouper),
		),
	)

	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(mdrenderer.NewFootnoteRenderer(), priorityRenderer),
		),
	)
}
