package renderer

import (
	"strconv"

	"github.com/elseano/mdstruct/pkg/ast"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type FootnoteRenderer struct{}

func NewFootnoteRenderer() *FootnoteRenderer {
	return &FootnoteRenderer{}
}

func (r *FootnoteRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFootnoteReference, r.renderReference)
	reg.Register(ast.KindFootnoteDefinition, r.renderDefinition)
	reg.Register(ast.KindFootnoteList, r.renderList)
}

func (r *FootnoteRenderer) renderReference(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	if !entering {
		return goldast.WalkContinue, nil
	}

	ref := node.(*ast.FootnoteReference)
	s := NewSink(w)
	s.Open("a", NodeAttributes(ref)...)
	s.Text(ref.Label)
	s.Close("a")

	return goldast.WalkSkipChildren, nil
}

func (r *FootnoteRenderer) renderDefinition(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	def := node.(*ast.FootnoteDefinition)
	s := NewSink(w)

	if !entering {
		s.Close("li")
		s.CR()
		return goldast.WalkContinue, nil
	}

	s.Open("li", NodeAttributes(def)...)
	s.CR()

	for i := 1; i <= def.Count; i++ {
		s.Open("a", Attr("href", "#"+def.RefIDPrefix+strconv.Itoa(i)), Attr("class", def.BackRefClass))
		s.RawText(def.BackRefText)
		s.Close("a")
		s.CR()
	}

	s.Open("strong")
	s.Text(def.Label)
	s.Close("strong")
	s.RawText(":")
	s.CR()

	return goldast.WalkContinue, nil
}

func (r *FootnoteRenderer) renderList(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	s := NewSink(w)

	if entering {
		s.Open("ul", NodeAttributes(node)...)
	} else {
		s.Close("ul")
	}
	s.CR()

	return goldast.WalkContinue, nil
}
