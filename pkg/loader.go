package mdstruct

import (
	"fmt"
	"os"

	"github.com/elseano/mdstruct/pkg/config"
	"github.com/elseano/mdstruct/pkg/extension"
	"github.com/elseano/mdstruct/pkg/util"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	meta "github.com/yuin/goldmark-meta"
	goldext "github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// PrepareMarkdown builds the goldmark pipeline described by cfg. Front
// matter is always recognised so documents can override outline settings.
func PrepareMarkdown(cfg *config.Config) goldmark.Markdown {
	extensions := []goldmark.Extender{meta.Meta}

	if cfg.Extensions.GFM {
		extensions = append(extensions, goldext.GFM)
	}
	if cfg.Extensions.Emoji {
		extensions = append(extensions, emoji.New())
	}
	if cfg.Extensions.Footnotes {
		extensions = append(extensions, extension.NewFootnotes(extension.WithFootnoteOptions(cfg.Footnote)))
	}
	if cfg.Extensions.TOC {
		extensions = append(extensions, extension.NewTableOfContents(extension.WithTOCOptions(cfg.TOC)))
	}
	if cfg.Extensions.Math {
		extensions = append(extensions, extension.NewMath(
			extension.WithMathRenderer(cfg.Math.Render),
			extension.WithMathClasses(cfg.Math.InlineClass, cfg.Math.DisplayClass),
		))
	}
	if cfg.Extensions.Highlight {
		extensions = append(extensions, extension.NewHighlight(cfg.HighlightStyle, cfg.HighlightCSS))
	}

	var parserOptions []parser.Option
	if cfg.Attributes {
		parserOptions = append(parserOptions, parser.WithAttribute())
	}
	if cfg.AutoHeadingID {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}

	var rendererOptions []goldmark.Option
	if cfg.Unsafe {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return goldmark.New(append(rendererOptions,
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parserOptions...),
	)...)
}

func Load(filename string, cfg *config.Config) (*Document, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	return LoadBytes(source, filename, cfg), nil
}

func LoadString(data string, filename string, cfg *config.Config) *Document {
	return LoadBytes([]byte(data), filename, cfg)
}

// LoadBytes parses source and runs every transformer over it.
func LoadBytes(source []byte, filename string, cfg *config.Config) *Document {
	gm := PrepareMarkdown(cfg)

	pc := parser.NewContext()
	root := gm.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	if util.Tracing() {
		util.Logger.Trace().Msgf("Transformed %s:\n%s", filename, util.DumpNode(root, source))
	}

	return &Document{
		Filename: filename,
		Root:     root,
		Source:   source,
		Goldmark: gm,
		Meta:     meta.Get(pc),
		config:   cfg,
	}
}
