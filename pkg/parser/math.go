package parser

import (
	"bytes"

	"github.com/elseano/mdstruct/pkg/ast"
	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type mathParser struct{}

var defaultMathParser = &mathParser{}

// NewMathParser returns an InlineParser for $inline$ and $$display$$
// formulas. A formula may span lines within the same paragraph.
func NewMathParser() parser.InlineParser {
	return defaultMathParser
}

func (s *mathParser) Trigger() []byte {
	return []byte{'$'}
}

func (s *mathParser) Parse(parent goldast.Node, block text.Reader, pc parser.Context) goldast.Node {
	line, _ := block.PeekLine()
	if len(line) == 0 || line[0] != '$' || block.PrecendingCharacter() == '\\' {
		return nil
	}

	closer := []byte{'$'}
	if len(line) > 1 && line[1] == '$' {
		closer = []byte{'$', '$'}
	}

	l, pos := block.Position()
	block.Advance(len(closer))

	var source bytes.Buffer
	for {
		line, _ := block.PeekLine()
		if line == nil {
			block.SetPosition(l, pos)
			return nil
		}

		if i := bytes.Index(line, closer); i >= 0 {
			source.Write(line[:i])
			block.Advance(i + len(closer))
			break
		}

		source.Write(line)
		block.AdvanceLine()
	}

	if len(bytes.TrimSpace(source.Bytes())) == 0 {
		block.SetPosition(l, pos)
		return nil
	}

	return ast.NewMath(source.String(), len(closer) == 1)
}
