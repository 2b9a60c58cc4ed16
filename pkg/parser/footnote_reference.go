package parser

import (
	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/pkg/options"
	mdutil "github.com/elseano/mdstruct/pkg/util"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type footnoteReferenceParser struct {
	options options.Footnote
}

// NewFootnoteReferenceParser returns an InlineParser which recognises
// [^label] markers. It also triggers on '!' so that "Hello![^foo]" is not
// taken by the image parser.
func NewFootnoteReferenceParser(opts options.Footnote) parser.InlineParser {
	return &footnoteReferenceParser{options: opts}
}

func (s *footnoteReferenceParser) Trigger() []byte {
	return []byte{'!', '['}
}

func (s *footnoteReferenceParser) Parse(parent goldast.Node, block text.Reader, pc parser.Context) goldast.Node {
	line, segment := block.PeekLine()

	pos := 0
	if len(line) > 0 && line[0] == '!' {
		pos++
	} else {
		switch block.PrecendingCharacter() {
		case '\n', '\\':
			return nil
		}
	}

	if pos+1 >= len(line) || line[pos] != '[' || line[pos+1] != '^' {
		return nil
	}

	open := pos + 2
	closes := scanLabel(line, open)
	if closes < 0 || closes == open {
		return nil
	}

	label := string(line[open:closes])
	block.Advance(closes + 1)

	if line[0] == '!' {
		parent.AppendChild(parent, goldast.NewTextSegment(text.NewSegment(segment.Start, segment.Start+1)))
	}

	mdutil.Logger.Trace().Msgf("Footnote reference %q", label)

	ref := ast.NewFootnoteReference(label)
	ast.SetAttr(ref, "class", s.options.RefClass)
	ast.SetAttr(ref, "href", "#"+s.options.DefinitionID(label))

	return ref
}

// scanLabel returns the index of the first unescaped ']' at or after start,
// or -1 if the line has none.
func scanLabel(line []byte, start int) int {
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case ']':
			return i
		case '\n':
			return -1
		}
	}

	return -1
}
