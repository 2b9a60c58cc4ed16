package extension

import (
	"github.com/elseano/mdstruct/pkg/options"
	mdparser "github.com/elseano/mdstruct/pkg/parser"
	mdrenderer "github.com/elseano/mdstruct/pkg/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type MathOption func(*options.Math)

// WithMathRenderer sets the function turning formula source into markup.
func WithMathRenderer(fn options.MathRenderer) MathOption {
	return func(o *options.Math) {
		o.Render = fn
	}
}

func WithMathClasses(inline, display string) MathOption {
	return func(o *options.Math) {
		o.InlineClass = inline
		o.DisplayClass = display
	}
}

type math struct {
	options options.Math
}

var Math = NewMath()

func NewMath(opts ...MathOption) goldmark.Extender {
	e := &math{options: options.DefaultMath()}
	for _, opt := range opts {
		opt(&e.options)
	}

	return e
}

func (e *math) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(mdparser.NewMathParser(), priorityMathParser),
		),
	)

	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(mdrenderer.NewMathRenderer(e.options), priorityRenderer),
		),
	)
}
