package parser

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	mdutil "github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Continuation lines must be indented this far to belong to a definition.
const definitionIndent = 4

type footnoteDefinitionParser struct {
	options options.Footnote
}

// NewFootnoteDefinitionParser returns a BlockParser for "[^label]:" blocks.
// It must be registered ahead of the paragraph parser, otherwise the marker is
// consumed as a link reference definition.
func NewFootnoteDefinitionParser(opts options.Footnote) parser.BlockParser {
	return &footnoteDefinitionParser{options: opts}
}

func (b *footnoteDefinitionParser) Trigger() []byte {
	return []byte{'['}
}

func (b *footnoteDefinitionParser) Open(parent goldast.Node, reader text.Reader, pc parser.Context) (goldast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos+1 >= len(line) || line[pos] != '[' || line[pos+1] != '^' {
		return nil, parser.NoChildren
	}

	open := pos + 2
	closes := scanLabel(line, open)
	if closes < 0 {
		return nil, parser.NoChildren
	}

	next := closes + 1
	if next >= len(line) || line[next] != ':' {
		return nil, parser.NoChildren
	}

	label := line[open:closes]
	if util.IsBlank(label) {
		return nil, parser.NoChildren
	}

	def := ast.NewFootnoteDefinition(string(label))
	def.RefIDPrefix = b.options.ReferenceIDPrefix(def.Label)
	def.BackRefText = b.options.BackRefText
	def.BackRefClass = b.options.BackRefClass
	ast.SetAttr(def, "id", b.options.DefinitionID(def.Label))
	ast.SetAttr(def, "class", b.options.DefClass)

	mdutil.Logger.Trace().Msgf("Footnote definition %q", def.Label)

	pos = next + 1
	if pos >= len(line) {
		reader.Advance(pos)
		return def, parser.NoChildren
	}

	reader.AdvanceAndSetPadding(pos, segment.Padding)
	return def, parser.HasChildren
}

func (b *footnoteDefinitionParser) Continue(node goldast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Continue | parser.HasChildren
	}

	childpos, padding := util.IndentPosition(line, reader.LineOffset(), definitionIndent)
	if childpos < 0 {
		return parser.Close
	}

	reader.AdvanceAndSetPadding(childpos, padding)
	return parser.Continue | parser.HasChildren
}

func (b *footnoteDefinitionParser) Close(node goldast.Node, reader text.Reader, pc parser.Context) {
}

func (b *footnoteDefinitionParser) CanInterruptParagraph() bool {
	return true
}

func (b *footnoteDefinitionParser) CanAcceptIndentedLine() bool {
	return false
}
