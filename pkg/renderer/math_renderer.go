package renderer

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	mdutil "github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type MathRenderer struct {
	options options.Math
}

func NewMathRenderer(opts options.Math) *MathRenderer {
	if opts.Render == nil {
		opts.Render = options.EscapedMath
	}

	return &MathRenderer{options: opts}
}

func (r *MathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindMath, r.renderMath)
}

func (r *MathRenderer) renderMath(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	if !entering {
		return goldast.WalkContinue, nil
	}

	n := node.(*ast.Math)
	s := NewSink(w)

	class := r.options.DisplayClass
	if n.Inline {
		class = r.options.InlineClass
	}

	if class != "" {
		s.Open("span", Attr("class", class))
	} else {
		s.Open("span")
	}

	markup, err := r.options.Render(n.Source, n.Inline)
	if err != nil {
		mdutil.Logger.Warn().Err(err).Msgf("Cannot render formula %q", n.Source)
		s.Text(n.Source)
	} else {
		s.RawText(markup)
	}

	s.Close("span")

	return goldast.WalkSkipChildren, nil
}
