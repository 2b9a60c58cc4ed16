package renderer

import (
	"strconv"

	"github.com/elseano/mdstruct/pkg/ast"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

type TOCRenderer struct{}

func NewTOCRenderer() *TOCRenderer {
	return &TOCRenderer{}
}

func (r *TOCRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindTableOfContents, r.renderTableOfContents)
}

func (r *TOCRenderer) renderTableOfContents(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	if !entering {
		return goldast.WalkContinue, nil
	}

	toc := node.(*ast.TableOfContents)
	s := NewSink(w)

	var classAttrs []html.Attribute
	if toc.Class != "" {
		classAttrs = append(classAttrs, Attr("class", toc.Class))
	}

	if toc.WrapInNav {
		s.Open("nav", classAttrs...)
		s.CR()
		classAttrs = nil
	}

	if tag := headingTag(toc.HeadingLevel); tag != "" && toc.HeadingText != "" {
		s.Open(tag)
		s.Text(toc.HeadingText)
		s.Close(tag)
		s.CR()
	}

	s.Open("ol", classAttrs...)
	s.CR()
	renderTOCItems(s, toc.Items)
	s.Close("ol")
	s.CR()

	if toc.WrapInNav {
		s.Close("nav")
		s.CR()
	}

	return goldast.WalkSkipChildren, nil
}

func renderTOCItems(s Sink, items []*ast.TOCItem) {
	for _, item := range items {
		s.Open("li")
		s.Open("a", Attr("href", "#"+item.Slug))
		s.Text(item.Title)
		s.Close("a")

		if len(item.Children) > 0 {
			s.CR()
			s.Open("ol")
			s.CR()
			renderTOCItems(s, item.Children)
			s.Close("ol")
			s.CR()
		}

		s.Close("li")
		s.CR()
	}
}

func headingTag(level int) string {
	if level < 1 {
		return ""
	}
	if level > 6 {
		level = 6
	}

	return "h" + strconv.Itoa(level)
}
