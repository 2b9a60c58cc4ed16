package renderer

import (
	"bytes"

	"github.com/alecthomas/chroma"
	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	mdutil "github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// HighlightRenderer renders fenced code blocks with chroma. Blocks without a
// language, or in a language chroma doesn't know, render as plain
// <pre><code>.
type HighlightRenderer struct {
	Style       string
	WithClasses bool
}

func NewHighlightRenderer(style string) *HighlightRenderer {
	return &HighlightRenderer{Style: style}
}

func (r *HighlightRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(goldast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *HighlightRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node goldast.Node, entering bool) (goldast.WalkStatus, error) {
	if !entering {
		return goldast.WalkContinue, nil
	}

	n := node.(*goldast.FencedCodeBlock)
	language := string(n.Language(source))
	code := mdutil.NodeLines(n, source)

	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			err := r.highlight(w, chroma.Coalesce(lexer), code)
			if err == nil {
				return goldast.WalkSkipChildren, nil
			}
			mdutil.Logger.Warn().Err(err).Msgf("Cannot highlight %s block", language)
		}
	}

	s := NewSink(w)
	s.Open("pre")
	if language != "" {
		s.Open("code", Attr("class", "language-"+language))
	} else {
		s.Open("code")
	}
	s.Text(string(code))
	s.Close("code")
	s.Close("pre")
	s.CR()

	return goldast.WalkSkipChildren, nil
}

func (r *HighlightRenderer) highlight(w util.BufWriter, lexer chroma.Lexer, code []byte) error {
	style := styles.Get(r.Style)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(code))
	if err != nil {
		return err
	}

	// Format into a buffer so a failure leaves nothing half-written.
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(r.WithClasses))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return err
	}

	if !bytes.HasSuffix(buf.Bytes(), []byte{'\n'}) {
		buf.WriteByte('\n')
	}
	_, _ = w.Write(buf.Bytes())

	return nil
}
